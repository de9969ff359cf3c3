// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ramdisk edits the root file system archive a boot image carries.
//
// The ramdisk payload is a gzip compressed cpio archive in new ASCII
// format. [Decompress] and [Compress] move between the stored form and the
// plain archive, and [Rewrite] replaces a single file in the archive while
// copying everything else through unchanged.
package ramdisk
