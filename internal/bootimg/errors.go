// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootimg

import "errors"

var (
	// ErrBadMagic is returned if the input does not start with the boot
	// image magic.
	ErrBadMagic = errors.New("missing boot image magic")

	// ErrUnsupportedVersion is returned if the header declares a header
	// version other than [SupportedVersion].
	ErrUnsupportedVersion = errors.New("unsupported boot image header version")

	// ErrImageTruncated is returned if the input is too short for the
	// header record or for the payload sizes the header declares.
	ErrImageTruncated = errors.New("boot image truncated")

	// ErrInvalidPageSize is returned if the header declares a page size
	// the header record itself does not fit into.
	ErrInvalidPageSize = errors.New("invalid boot image page size")

	// ErrPayloadTooLarge is returned if a payload does not fit into the
	// 32 bit size field of the header record.
	ErrPayloadTooLarge = errors.New("payload exceeds size field range")
)
