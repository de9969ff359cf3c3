// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package adbkeys

import (
	"fmt"
	"log/slog"

	"github.com/Hawk777/adb-keys-initramfs/internal/bootimg"
	"github.com/Hawk777/adb-keys-initramfs/internal/ramdisk"
)

// KeysName is the name of the ramdisk entry adbd reads accepted public
// keys from.
const KeysName = "adb_keys"

// PatchImage returns a copy of the boot image whose ramdisk contains key
// as the only adb_keys entry.
//
// The input is parsed, its ramdisk payload decompressed, the archive
// rewritten, recompressed and the whole image serialized again with
// refreshed payload sizes and ID. The input buffer is left untouched, and
// all other image content is carried over unchanged.
func PatchImage(image, key []byte) ([]byte, error) {
	img, err := bootimg.Parse(image)
	if err != nil {
		return nil, fmt.Errorf("parse boot image: %w", err)
	}

	slog.Debug("Parsed boot image",
		slog.Int("kernel", len(img.Kernel)),
		slog.Int("ramdisk", len(img.Ramdisk)),
		slog.Int("second", len(img.Second)))

	archive, err := ramdisk.Decompress(img.Ramdisk)
	if err != nil {
		return nil, fmt.Errorf("unpack ramdisk: %w", err)
	}

	rewritten, err := ramdisk.Rewrite(archive, KeysName, key)
	if err != nil {
		return nil, fmt.Errorf("rewrite ramdisk: %w", err)
	}

	img.Ramdisk, err = ramdisk.Compress(rewritten)
	if err != nil {
		return nil, fmt.Errorf("repack ramdisk: %w", err)
	}

	out, err := img.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize boot image: %w", err)
	}

	slog.Debug("Patched boot image",
		slog.Int("size", len(out)),
		slog.Int("key", len(key)))

	return out, nil
}
