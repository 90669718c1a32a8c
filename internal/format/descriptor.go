package format

import (
	"fmt"

	"github.com/joshuapare/sfokit/internal/buf"
)

// Descriptor models one 16-byte index record. It locates a key inside the key
// table and a value slot inside the data table.
type Descriptor struct {
	KeyOffset   uint16 // relative to Header.KeyTableStart
	Format      Format
	ValueLen    uint32 // payload size
	ValueMaxLen uint32 // slot size; payload is zero-padded up to it
	ValueOffset uint32 // relative to Header.DataTableStart
}

// Slot describes the encoded size of a value about to be stored.
type Slot struct {
	Format Format
	Len    uint32
}

// DecodeDescriptor decodes a descriptor record with bounds checking.
func DecodeDescriptor(b []byte) (Descriptor, error) {
	if len(b) < DescriptorSize {
		return Descriptor{}, fmt.Errorf("descriptor: %w (have %d, need %d)", ErrTruncated, len(b), DescriptorSize)
	}
	f, err := ParseFormat(b[DescFormatOffset:])
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		KeyOffset:   buf.U16LE(b[DescKeyOffsetOffset:]),
		Format:      f,
		ValueLen:    buf.U32LE(b[DescValueLenOffset:]),
		ValueMaxLen: buf.U32LE(b[DescValueMaxLenOffset:]),
		ValueOffset: buf.U32LE(b[DescValueOffsetOffset:]),
	}, nil
}

// Append writes the 16-byte record to dst.
func (d Descriptor) Append(dst []byte) []byte {
	dst = buf.AppendU16LE(dst, d.KeyOffset)
	fb := d.Format.Bytes()
	dst = append(dst, fb[:]...)
	dst = buf.AppendU32LE(dst, d.ValueLen)
	dst = buf.AppendU32LE(dst, d.ValueMaxLen)
	return buf.AppendU32LE(dst, d.ValueOffset)
}

// SlotEnd returns the data-table-relative offset just past this slot.
func (d Descriptor) SlotEnd() uint32 {
	return d.ValueOffset + d.ValueMaxLen
}

func (d Descriptor) String() string {
	return fmt.Sprintf(
		"Key offset: 0x%04X\nData format: %s\nData length: %d bytes [0x%08X]\nData max length: %d bytes [0x%08X]\nData offset: 0x%08X",
		d.KeyOffset, d.Format, d.ValueLen, d.ValueLen, d.ValueMaxLen, d.ValueMaxLen, d.ValueOffset,
	)
}
