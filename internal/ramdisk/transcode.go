// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ramdisk

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Decompress unpacks the gzip stream a ramdisk payload is stored as.
//
// The stream is read to its end, so a corrupted checksum or a truncated
// stream is detected and reported as [ErrCorruptCompression].
func Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCompression, err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCompression, err)
	}

	return raw, nil
}

// Compress packs a plain archive back into a gzip stream.
//
// The best compression level is used. The result does not match the
// original payload byte for byte, but decompresses to the same archive.
func Compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer

	writer, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("new gzip writer: %w", err)
	}

	_, err = writer.Write(raw)
	if err != nil {
		return nil, fmt.Errorf("compress ramdisk: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("close gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}
