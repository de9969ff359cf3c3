// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ramdisk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cavaliergopher/cpio"
)

// replacementMode marks the inserted entry as a regular file readable by
// everyone and writable by the owner.
const replacementMode = cpio.TypeReg | 0o644

// Rewrite copies the cpio archive entry by entry, dropping every entry
// named name and appending a single replacement entry with the given
// content just before the trailer.
//
// All other entries keep their order, metadata and content. If no entry
// named name exists, the replacement is still appended, so the result
// always contains the entry exactly once.
func Rewrite(archive []byte, name string, content []byte) ([]byte, error) {
	var buf bytes.Buffer

	reader := cpio.NewReader(bytes.NewReader(archive))
	writer := cpio.NewWriter(&buf)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
		}

		if hdr.Name == name {
			continue
		}

		err = copyEntry(writer, reader, hdr)
		if err != nil {
			return nil, err
		}
	}

	err := writeReplacement(writer, name, content)
	if err != nil {
		return nil, err
	}

	// Close appends the trailer entry.
	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return buf.Bytes(), nil
}

// copyEntry passes a single entry through unchanged.
//
// The reader consumes the body of a symbolic link into the Linkname field,
// so for links the body is restored from there.
func copyEntry(writer *cpio.Writer, reader *cpio.Reader, hdr *cpio.Header,
) error {
	out := &cpio.Header{
		DeviceID: hdr.DeviceID,
		Inode:    hdr.Inode,
		Mode:     hdr.Mode,
		Uid:      hdr.Uid,
		Guid:     hdr.Guid,
		Links:    hdr.Links,
		ModTime:  hdr.ModTime,
		Size:     hdr.Size,
		Name:     hdr.Name,
		Checksum: hdr.Checksum,
	}

	var body io.Reader = reader

	if hdr.Linkname != "" {
		out.Size = int64(len(hdr.Linkname))
		body = strings.NewReader(hdr.Linkname)
	}

	err := writer.WriteHeader(out)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	written, err := io.Copy(writer, body)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", hdr.Name, err)
	}

	if written != out.Size {
		return fmt.Errorf("%w: body of %s truncated",
			ErrMalformedArchive, hdr.Name)
	}

	return nil
}

// writeReplacement appends the new entry. Owner and group are root and the
// modification time is the epoch, matching the rest of a stock ramdisk.
func writeReplacement(writer *cpio.Writer, name string, content []byte,
) error {
	hdr := &cpio.Header{
		Name:  name,
		Mode:  replacementMode,
		Links: 1,
		Size:  int64(len(content)),
	}

	err := writer.WriteHeader(hdr)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", name, err)
	}

	_, err = writer.Write(content)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", name, err)
	}

	return nil
}
