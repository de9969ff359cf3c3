// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hawk777/adb-keys-initramfs/internal/adbkeys"
	"github.com/Hawk777/adb-keys-initramfs/internal/bootimg"
	"github.com/Hawk777/adb-keys-initramfs/internal/flashzip"
	"github.com/klauspost/compress/zip"
)

// patchFile patches a single input file and writes the result to output.
//
// A file starting with the boot image magic is patched directly. Anything
// else is treated as a flashable ZIP whose bootName entry is rewritten.
func patchFile(input, output, bootName string, key []byte) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	if bytes.HasPrefix(data, []byte(bootimg.Magic)) {
		slog.Debug("Patching bare boot image", slog.String("file", input))

		patched, err := adbkeys.PatchImage(data, key)
		if err != nil {
			return err
		}

		return writeFileAtomic(output, func(w io.Writer) error {
			_, err := w.Write(patched)
			return err
		})
	}

	slog.Debug("Patching flashable ZIP",
		slog.String("file", input),
		slog.String("entry", bootName))

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	return writeFileAtomic(output, func(w io.Writer) error {
		return flashzip.Rewrite(w, archive, bootName,
			func(image []byte) ([]byte, error) {
				return adbkeys.PatchImage(image, key)
			})
	})
}

// derivedOutputPath places the patched file next to the input:
// update.zip becomes update.adb.zip, boot.img becomes boot.adb.img.
func derivedOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".adb" + ext
}

// writeFileAtomic writes to a temporary file in the destination directory
// and renames it into place on success. On failure the destination is left
// untouched.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	err = write(tmp)
	if err != nil {
		discard(tmp)
		return err
	}

	err = tmp.Chmod(0o644)
	if err != nil {
		discard(tmp)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// discard closes and removes a temporary file that will not be used.
func discard(file *os.File) {
	_ = file.Close()
	_ = os.Remove(file.Name())
}
