// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootimg

import (
	"encoding/binary"
	"fmt"
)

const (
	// Magic identifies a boot image. It occupies the first 8 bytes.
	Magic = "ANDROID!"

	// SupportedVersion is the only header version this package handles.
	// Later versions move fields around and add payload sections.
	SupportedVersion = 0

	// HeaderSize is the size of the fixed header record. On disk the
	// record is zero padded to a full page.
	HeaderSize = 1632

	// NameSize is the size of the product name field.
	NameSize = 16

	// CmdlineSize is the size of the kernel command line field.
	CmdlineSize = 512

	// IDSize is the size of the ID field. See [ComputeID].
	IDSize = 32

	// ExtraCmdlineSize is the size of the command line overflow field.
	ExtraCmdlineSize = 1024
)

// Byte offsets of the header record fields. All integer fields are 32 bit
// little-endian. The magic occupies offsets 0 through 7.
const (
	offKernelSize   = 8
	offKernelAddr   = 12
	offRamdiskSize  = 16
	offRamdiskAddr  = 20
	offSecondSize   = 24
	offSecondAddr   = 28
	offTagsAddr     = 32
	offPageSize     = 36
	offVersion      = 40
	offOSVersion    = 44
	offName         = 48
	offCmdline      = 64
	offID           = 576
	offExtraCmdline = 608
)

// Header is the fixed record at the start of a boot image.
//
// The load addresses and the tags address are physical addresses the boot
// loader copies the sections to. They are carried along unchanged, as are
// the name and command line fields.
type Header struct {
	KernelSize   uint32
	KernelAddr   uint32
	RamdiskSize  uint32
	RamdiskAddr  uint32
	SecondSize   uint32
	SecondAddr   uint32
	TagsAddr     uint32
	PageSize     uint32
	Version      uint32
	OSVersion    uint32
	Name         [NameSize]byte
	Cmdline      [CmdlineSize]byte
	ID           [IDSize]byte
	ExtraCmdline [ExtraCmdlineSize]byte
}

// decode reads the header record from the start of data and validates it.
func (h *Header) decode(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d",
			ErrImageTruncated, HeaderSize, len(data))
	}

	if string(data[:len(Magic)]) != Magic {
		return ErrBadMagic
	}

	le := binary.LittleEndian

	h.KernelSize = le.Uint32(data[offKernelSize:])
	h.KernelAddr = le.Uint32(data[offKernelAddr:])
	h.RamdiskSize = le.Uint32(data[offRamdiskSize:])
	h.RamdiskAddr = le.Uint32(data[offRamdiskAddr:])
	h.SecondSize = le.Uint32(data[offSecondSize:])
	h.SecondAddr = le.Uint32(data[offSecondAddr:])
	h.TagsAddr = le.Uint32(data[offTagsAddr:])
	h.PageSize = le.Uint32(data[offPageSize:])
	h.Version = le.Uint32(data[offVersion:])
	h.OSVersion = le.Uint32(data[offOSVersion:])
	copy(h.Name[:], data[offName:])
	copy(h.Cmdline[:], data[offCmdline:])
	copy(h.ID[:], data[offID:])
	copy(h.ExtraCmdline[:], data[offExtraCmdline:])

	if h.Version != SupportedVersion {
		return fmt.Errorf("%w %d", ErrUnsupportedVersion, h.Version)
	}

	if h.PageSize < HeaderSize {
		return fmt.Errorf("%w %d", ErrInvalidPageSize, h.PageSize)
	}

	return nil
}

// encode writes the header record into the first [HeaderSize] bytes of
// buf. The caller provides a zeroed buffer spanning the whole header page.
func (h *Header) encode(buf []byte) {
	le := binary.LittleEndian

	copy(buf, Magic)
	le.PutUint32(buf[offKernelSize:], h.KernelSize)
	le.PutUint32(buf[offKernelAddr:], h.KernelAddr)
	le.PutUint32(buf[offRamdiskSize:], h.RamdiskSize)
	le.PutUint32(buf[offRamdiskAddr:], h.RamdiskAddr)
	le.PutUint32(buf[offSecondSize:], h.SecondSize)
	le.PutUint32(buf[offSecondAddr:], h.SecondAddr)
	le.PutUint32(buf[offTagsAddr:], h.TagsAddr)
	le.PutUint32(buf[offPageSize:], h.PageSize)
	le.PutUint32(buf[offVersion:], h.Version)
	le.PutUint32(buf[offOSVersion:], h.OSVersion)
	copy(buf[offName:], h.Name[:])
	copy(buf[offCmdline:], h.Cmdline[:])
	copy(buf[offID:], h.ID[:])
	copy(buf[offExtraCmdline:], h.ExtraCmdline[:])
}
