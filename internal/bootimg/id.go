// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootimg

import (
	"crypto/sha1" //nolint:gosec
	"encoding/binary"
)

// ComputeID returns the value of the header ID field for the given
// payloads.
//
// The ID is the SHA-1 digest over each payload followed by its length as a
// 32 bit little-endian integer, zero padded to [IDSize] bytes. This is the
// same value the stock mkbootimg tool stores, so boot loaders that check
// the field accept the result.
func ComputeID(kernel, ramdisk, second []byte) [IDSize]byte {
	digest := sha1.New() //nolint:gosec

	for _, payload := range [][]byte{kernel, ramdisk, second} {
		digest.Write(payload)

		var size [4]byte

		binary.LittleEndian.PutUint32(size[:], uint32(len(payload)))
		digest.Write(size[:])
	}

	var id [IDSize]byte

	copy(id[:], digest.Sum(nil))

	return id
}
