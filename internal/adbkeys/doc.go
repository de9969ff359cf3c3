// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package adbkeys installs an adb public key into a boot image.
//
// On boot, adbd reads /adb_keys from the root file system to decide which
// hosts may connect without on-screen confirmation. The package rewrites
// the ramdisk of a boot image so that file holds exactly the given key
// material, and refreshes the image header accordingly.
package adbkeys
