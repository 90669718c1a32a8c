package sfo

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/sfokit/internal/buf"
	"github.com/joshuapare/sfokit/internal/format"
)

// ValueKind tells the two value variants apart.
type ValueKind uint8

const (
	KindText ValueKind = iota
	KindNumber
)

func (k ValueKind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "text"
}

// Value is either Text or Number. The zero Value is the empty text.
type Value struct {
	kind ValueKind
	text string
	num  uint32
}

// Text returns a text value. It is stored as NUL-terminated UTF-8.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number returns a number value. It is stored as a little-endian uint32.
func Number(n uint32) Value {
	return Value{kind: KindNumber, num: n}
}

// Kind returns the variant.
func (v Value) Kind() ValueKind { return v.kind }

// AsText returns the text and true for text values.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsNumber returns the number and true for number values.
func (v Value) AsNumber() (uint32, bool) {
	return v.num, v.kind == KindNumber
}

// String renders text verbatim and numbers in decimal.
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.FormatUint(uint64(v.num), 10)
	}
	return v.text
}

// Format returns the on-disk format a newly written v uses.
func (v Value) Format() Format {
	if v.kind == KindNumber {
		return format.UInt32
	}
	return format.NulTerminatedText
}

// EncodedLen returns the exact slot size v needs.
func (v Value) EncodedLen() uint32 {
	if v.kind == KindNumber {
		return format.UInt32Size
	}
	return uint32(len(v.text)) + 1
}

func (v Value) slot() format.Slot {
	return format.Slot{Format: v.Format(), Len: v.EncodedLen()}
}

// appendPayload writes the value bytes without the slot's zero fill.
func (v Value) appendPayload(dst []byte) []byte {
	if v.kind == KindNumber {
		return buf.AppendU32LE(dst, v.num)
	}
	return append(dst, v.text...)
}

// valid reports whether v can be written as a new slot.
func (v Value) valid() bool {
	if v.kind == KindNumber {
		return true
	}
	return utf8.ValidString(v.text) && !strings.ContainsRune(v.text, 0)
}
