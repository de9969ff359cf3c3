// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ramdisk

import "errors"

var (
	// ErrCorruptCompression is returned if the ramdisk payload is not a
	// valid gzip stream.
	ErrCorruptCompression = errors.New("corrupt ramdisk compression")

	// ErrMalformedArchive is returned if the cpio archive has an entry
	// header that cannot be parsed or an entry body that is truncated.
	ErrMalformedArchive = errors.New("malformed ramdisk archive")
)
