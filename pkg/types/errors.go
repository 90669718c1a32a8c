package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // bad magic, bad format tag, unknown format code
	ErrKindCorrupt                 // truncated reads, inconsistent offsets, bad UTF-8
	ErrKindNotFound                // missing key
	ErrKindExists                  // duplicate key on add
	ErrKindInvalid                 // value or key cannot be encoded
)

// String returns a short label for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindCorrupt:
		return "corrupt"
	case ErrKindNotFound:
		return "not found"
	case ErrKindExists:
		return "exists"
	case ErrKindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (wrapped) by the codec and the container.
var (
	// ErrUnknownMagic indicates the input does not start with 00 50 53 46.
	ErrUnknownMagic = &Error{Kind: ErrKindFormat, Msg: "unknown sfo magic"}
	// ErrBadFormatTag indicates a descriptor format whose high byte is not 0x04.
	ErrBadFormatTag = &Error{Kind: ErrKindFormat, Msg: "bad format tag"}
	// ErrUnknownFormat indicates a descriptor format with an unknown low byte.
	ErrUnknownFormat = &Error{Kind: ErrKindFormat, Msg: "unknown format code"}
	// ErrTruncated indicates a field was read short of its expected size.
	ErrTruncated = &Error{Kind: ErrKindCorrupt, Msg: "truncated read"}
	// ErrCorrupt indicates header and descriptor offsets disagree.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "inconsistent sfo layout"}
	// ErrInvalidUTF8 indicates a key or text value that is not valid UTF-8.
	ErrInvalidUTF8 = &Error{Kind: ErrKindCorrupt, Msg: "invalid utf-8"}
	// ErrKeyNotFound indicates an edit or delete of an absent key.
	ErrKeyNotFound = &Error{Kind: ErrKindNotFound, Msg: "key not found"}
	// ErrKeyExists indicates an add of a key that is already present.
	ErrKeyExists = &Error{Kind: ErrKindExists, Msg: "key already exists"}
	// ErrInvalidValue indicates a key or value that cannot be encoded.
	ErrInvalidValue = &Error{Kind: ErrKindInvalid, Msg: "invalid key or value"}
	// ErrKeyTableFull indicates key offsets would no longer fit in 16 bits.
	ErrKeyTableFull = &Error{Kind: ErrKindInvalid, Msg: "key table full"}
)

// KindOf returns the kind of the first *Error in err's chain.
// ok is false when err carries no typed error.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
