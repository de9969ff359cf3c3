// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package flashzip

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// Transform produces the replacement content for the entry under edit.
type Transform func([]byte) ([]byte, error)

// Rewrite copies every entry of src into a new archive written to dst,
// running the entry named name through transform.
//
// Entry order, names and methods are preserved. Entries other than name
// are copied in their raw compressed form without being decompressed.
// Returns [ErrEntryNotFound] if no entry matches name; errors from
// transform are passed through unchanged.
func Rewrite(dst io.Writer, src *zip.Reader, name string,
	transform Transform,
) error {
	writer := zip.NewWriter(dst)

	found := false

	for _, file := range src.File {
		if file.Name != name {
			err := writer.Copy(file)
			if err != nil {
				return fmt.Errorf("copy %s: %w", file.Name, err)
			}

			continue
		}

		found = true

		err := rewriteEntry(writer, file, transform)
		if err != nil {
			return err
		}
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	err := writer.Close()
	if err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}

// rewriteEntry reads the entry fully, runs it through transform and writes
// the result under the original entry's metadata.
func rewriteEntry(writer *zip.Writer, file *zip.File, transform Transform,
) error {
	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read %s: %w", file.Name, err)
	}

	patched, err := transform(content)
	if err != nil {
		return err
	}

	hdr := &zip.FileHeader{
		Name:     file.Name,
		Comment:  file.Comment,
		Method:   file.Method,
		Modified: file.Modified,
	}
	hdr.SetMode(file.Mode())

	entry, err := writer.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("create %s: %w", file.Name, err)
	}

	_, err = entry.Write(patched)
	if err != nil {
		return fmt.Errorf("write %s: %w", file.Name, err)
	}

	return nil
}
