// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootimg reads and writes Android boot images.
//
// A boot image is a fixed little-endian header record followed by up to
// three payload sections: kernel, ramdisk and second stage boot loader.
// The header occupies the first page, and each payload starts on a page
// boundary, using the page size declared in the header. Only header
// version 0 is supported.
package bootimg
