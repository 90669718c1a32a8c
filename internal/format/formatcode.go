package format

import "fmt"

// Format identifies how a value slot is encoded. On disk it is the byte
// FormatTag followed by the Format code.
type Format uint8

const (
	// RawText is UTF-8 without a guaranteed terminator ("utf8-S").
	RawText Format = 0x00
	// NulTerminatedText is UTF-8 terminated by a zero byte inside the slot.
	NulTerminatedText Format = 0x02
	// UInt32 is a little-endian uint32 in a 4-byte slot.
	UInt32 Format = 0x04
)

// ParseFormat decodes a two-byte format field.
func ParseFormat(b []byte) (Format, error) {
	if len(b) < FormatSize {
		return 0, fmt.Errorf("format: %w", ErrTruncated)
	}
	if b[0] != FormatTag {
		return 0, fmt.Errorf("format tag %#02x, expected %#02x: %w", b[0], FormatTag, ErrBadFormatTag)
	}
	f := Format(b[1])
	if !f.Valid() {
		return 0, fmt.Errorf("format code %#02x: %w", b[1], ErrUnknownFormat)
	}
	return f, nil
}

// Valid reports whether f is in the catalogue.
func (f Format) Valid() bool {
	switch f {
	case RawText, NulTerminatedText, UInt32:
		return true
	default:
		return false
	}
}

// Bytes returns the on-disk encoding of f.
func (f Format) Bytes() [FormatSize]byte {
	return [FormatSize]byte{FormatTag, byte(f)}
}

// Tag returns the field as it is usually written in documentation, e.g. 0x0402.
func (f Format) Tag() uint16 {
	return uint16(FormatTag)<<8 | uint16(f)
}

// IsText reports whether the slot holds a string.
func (f Format) IsText() bool {
	return f == RawText || f == NulTerminatedText
}

// Name returns a short identifier suitable for JSON and flags.
func (f Format) Name() string {
	switch f {
	case RawText:
		return "utf8-raw"
	case NulTerminatedText:
		return "utf8"
	case UInt32:
		return "uint32"
	default:
		return fmt.Sprintf("unknown-%#02x", uint8(f))
	}
}

func (f Format) String() string {
	switch f {
	case RawText:
		return "UTF-8 Non-null terminated [0x0400]"
	case NulTerminatedText:
		return "UTF-8 Null terminated [0x0402]"
	case UInt32:
		return "Unsigned 32-bit integer [0x0404]"
	default:
		return fmt.Sprintf("Unknown [%#04x]", f.Tag())
	}
}
