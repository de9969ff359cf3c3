// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootimg

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Image is a boot image split into its header record and payload sections.
//
// The payloads are kept exactly as stored in the image. In particular,
// Ramdisk remains in its compressed form. A payload that is not present is
// an empty slice.
type Image struct {
	Header  Header
	Kernel  []byte
	Ramdisk []byte
	Second  []byte
}

// Parse splits a boot image into its header record and payload sections.
//
// The returned payload slices share memory with data. The header is
// validated, and the declared payload ranges must lie within data.
func Parse(data []byte) (*Image, error) {
	img := &Image{}

	err := img.Header.decode(data)
	if err != nil {
		return nil, err
	}

	// The header occupies the first page, the payloads follow, each
	// starting on a page boundary.
	offset := int64(img.Header.PageSize)

	img.Kernel, offset, err = payload(data, offset, img.Header.KernelSize,
		img.Header.PageSize)
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}

	img.Ramdisk, offset, err = payload(data, offset, img.Header.RamdiskSize,
		img.Header.PageSize)
	if err != nil {
		return nil, fmt.Errorf("ramdisk: %w", err)
	}

	img.Second, _, err = payload(data, offset, img.Header.SecondSize,
		img.Header.PageSize)
	if err != nil {
		return nil, fmt.Errorf("second stage: %w", err)
	}

	return img, nil
}

// payload cuts the declared byte range out of data. It returns the section
// along with the offset of the section following its page aligned end.
func payload(data []byte, offset int64, size, pageSize uint32,
) ([]byte, int64, error) {
	end := offset + int64(size)
	if end > int64(len(data)) {
		return nil, 0, fmt.Errorf("%w: payload ends at %d, image has %d bytes",
			ErrImageTruncated, end, len(data))
	}

	return data[offset:end], offset + pagedSize(size, pageSize), nil
}

// pagedSize returns size rounded up to the next multiple of pageSize.
func pagedSize(size, pageSize uint32) int64 {
	pages := (int64(size) + int64(pageSize) - 1) / int64(pageSize)
	return pages * int64(pageSize)
}

// WriteTo serializes the image.
//
// The header's payload size fields and ID are refreshed from the current
// payloads first, so the written image is consistent even after payloads
// have been swapped out. Each section is zero padded to the page size
// declared in the header.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	err := img.updateHeader()
	if err != nil {
		return 0, err
	}

	page := make([]byte, img.Header.PageSize)
	img.Header.encode(page)

	var written int64

	n, err := w.Write(page)
	written += int64(n)

	if err != nil {
		return written, fmt.Errorf("write header: %w", err)
	}

	for _, section := range []struct {
		name    string
		payload []byte
	}{
		{"kernel", img.Kernel},
		{"ramdisk", img.Ramdisk},
		{"second stage", img.Second},
	} {
		n, err := writeSection(w, section.payload, img.Header.PageSize)
		written += n

		if err != nil {
			return written, fmt.Errorf("write %s: %w", section.name, err)
		}
	}

	return written, nil
}

// Bytes returns the serialized image as a single buffer. See
// [Image.WriteTo].
func (img *Image) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	_, err := img.WriteTo(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// updateHeader refreshes the payload size fields and the ID from the
// current payloads.
func (img *Image) updateHeader() error {
	for _, section := range []struct {
		name    string
		payload []byte
	}{
		{"kernel", img.Kernel},
		{"ramdisk", img.Ramdisk},
		{"second stage", img.Second},
	} {
		if int64(len(section.payload)) > math.MaxUint32 {
			return fmt.Errorf("%s: %w", section.name, ErrPayloadTooLarge)
		}
	}

	img.Header.KernelSize = uint32(len(img.Kernel))
	img.Header.RamdiskSize = uint32(len(img.Ramdisk))
	img.Header.SecondSize = uint32(len(img.Second))
	img.Header.ID = ComputeID(img.Kernel, img.Ramdisk, img.Second)

	return nil
}

// writeSection writes the payload followed by zero padding up to the next
// page boundary. An empty payload occupies no pages at all.
func writeSection(w io.Writer, payload []byte, pageSize uint32,
) (int64, error) {
	var written int64

	n, err := w.Write(payload)
	written += int64(n)

	if err != nil {
		return written, err
	}

	padding := pagedSize(uint32(len(payload)), pageSize) - int64(len(payload))
	if padding > 0 {
		n, err := w.Write(make([]byte, padding))
		written += int64(n)

		if err != nil {
			return written, err
		}
	}

	return written, nil
}
