// Package format houses low-level decoders and encoders for the PARAM.SFO
// container format. The goal is to keep the parsing focused, bounds-checked,
// and independent from the public API so the sfo package can orchestrate the
// data in a more ergonomic form.
package format

// Magic is the four-byte signature at the start of every container.
// Layout:
//
//	0x00  0x00 'P' 'S' 'F'
var Magic = [MagicSize]byte{0x00, 0x50, 0x53, 0x46}

// ============================================================================
// Header Constants
// ============================================================================

const (
	MagicOffset = 0x00
	MagicSize   = 4

	HeaderVersionOffset    = 0x04 // uint32
	HeaderKeyTableOffset   = 0x08 // uint32, absolute offset of the key table
	HeaderDataTableOffset  = 0x0C // uint32, absolute offset of the value table
	HeaderEntryCountOffset = 0x10 // uint32

	// HeaderSize covers the magic and the four header fields. The descriptor
	// table starts immediately after it.
	HeaderSize = 0x14

	// DefaultVersion is the version found in PS3 PARAM.SFO files (1.1).
	DefaultVersion = 0x00000101
)

// ============================================================================
// Descriptor Constants
// ============================================================================
// Descriptor field offsets within one 16-byte record.
const (
	DescKeyOffsetOffset   = 0x00 // uint16, relative to key table start
	DescFormatOffset      = 0x02 // [2]byte, 0x04 then the format code
	DescValueLenOffset    = 0x04 // uint32, payload size
	DescValueMaxLenOffset = 0x08 // uint32, slot size
	DescValueOffsetOffset = 0x0C // uint32, relative to data table start

	DescriptorSize = 0x10
)

// ============================================================================
// Format Constants
// ============================================================================.
const (
	// FormatTag is the fixed first byte of every format field.
	FormatTag = 0x04

	FormatSize = 2

	// UInt32Size is the payload and slot size of a UInt32 value.
	UInt32Size = 4
)

// ============================================================================
// Key Table Constants
// ============================================================================.
const (
	// KeyTableAlignment is the alignment of the data table start. The key
	// table is zero-padded up to it.
	KeyTableAlignment = 4

	// KeyTableAlignmentMask is KeyTableAlignment - 1.
	KeyTableAlignmentMask = KeyTableAlignment - 1

	// MaxKeyOffset is the largest key offset a descriptor can carry.
	MaxKeyOffset = 0xFFFF
)
