package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/sfokit/internal/buf"
)

// Header holds the four global fields that follow the magic.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    0x00 'P' 'S' 'F'
//	 0x04    4    Version
//	 0x08    4    Key table start (absolute)
//	 0x0C    4    Data table start (absolute)
//	 0x10    4    Entry count
//
// All fields are little-endian.
type Header struct {
	Version        uint32
	KeyTableStart  uint32
	DataTableStart uint32
	EntryCount     uint32
}

// NewHeader returns the header of a container with no entries.
func NewHeader(version uint32) Header {
	return Header{
		Version:        version,
		KeyTableStart:  HeaderSize,
		DataTableStart: HeaderSize,
	}
}

// CheckMagic verifies the first four bytes of b.
func CheckMagic(b []byte) error {
	m, ok := buf.Slice(b, MagicOffset, MagicSize)
	if !ok {
		return fmt.Errorf("magic: %w", ErrTruncated)
	}
	if !bytes.Equal(m, Magic[:]) {
		return fmt.Errorf("magic % X: %w", m, ErrUnknownMagic)
	}
	return nil
}

// ParseHeader extracts the header fields from a container buffer. The magic
// is not checked here; see CheckMagic.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w (have %d, need %d)", ErrTruncated, len(b), HeaderSize)
	}
	return Header{
		Version:        buf.U32LE(b[HeaderVersionOffset:]),
		KeyTableStart:  buf.U32LE(b[HeaderKeyTableOffset:]),
		DataTableStart: buf.U32LE(b[HeaderDataTableOffset:]),
		EntryCount:     buf.U32LE(b[HeaderEntryCountOffset:]),
	}, nil
}

// Append writes the four header fields (without the magic) to dst.
func (h Header) Append(dst []byte) []byte {
	dst = buf.AppendU32LE(dst, h.Version)
	dst = buf.AppendU32LE(dst, h.KeyTableStart)
	dst = buf.AppendU32LE(dst, h.DataTableStart)
	return buf.AppendU32LE(dst, h.EntryCount)
}

// OnInsert returns the header after one entry with a keyLen-byte key was
// inserted and the key table padding went from prevPad to newPad.
func (h Header) OnInsert(keyLen, prevPad, newPad int) Header {
	h.KeyTableStart += DescriptorSize
	h.DataTableStart = addInt(h.DataTableStart, keyLen+DescriptorSize-prevPad+newPad)
	h.EntryCount++
	return h
}

// OnDelete is the inverse of OnInsert.
func (h Header) OnDelete(keyLen, prevPad, newPad int) Header {
	h.KeyTableStart -= DescriptorSize
	h.DataTableStart = addInt(h.DataTableStart, -(keyLen + DescriptorSize + prevPad - newPad))
	h.EntryCount--
	return h
}

// OnEdit returns the header after an in-place value edit. Only the padding
// delta can move the data table.
func (h Header) OnEdit(prevPad, newPad int) Header {
	h.DataTableStart = addInt(h.DataTableStart, newPad-prevPad)
	return h
}

// String renders the header one field per line.
func (h Header) String() string {
	return fmt.Sprintf(
		"Version: 0x%02X\nKey table start offset: 0x%02X\nData table start offset: 0x%02X\nTable entries count: %d [0x%02X]",
		h.Version, h.KeyTableStart, h.DataTableStart, h.EntryCount, h.EntryCount,
	)
}

func addInt(v uint32, delta int) uint32 {
	return uint32(int64(v) + int64(delta))
}
