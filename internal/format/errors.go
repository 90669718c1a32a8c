package format

import "github.com/joshuapare/sfokit/pkg/types"

// Codec errors. They alias the shared taxonomy so errors.Is works the same
// whether a caller imports format or types.
var (
	// ErrUnknownMagic indicates the buffer does not start with Magic.
	ErrUnknownMagic = types.ErrUnknownMagic
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = types.ErrTruncated
	// ErrBadFormatTag indicates a format field whose first byte is not FormatTag.
	ErrBadFormatTag = types.ErrBadFormatTag
	// ErrUnknownFormat indicates a format code outside the catalogue.
	ErrUnknownFormat = types.ErrUnknownFormat
	// ErrCorrupt indicates offsets that contradict each other.
	ErrCorrupt = types.ErrCorrupt
	// ErrNotFound indicates a descriptor index out of range.
	ErrNotFound = types.ErrKeyNotFound
	// ErrKeyTableFull indicates a key offset would overflow uint16.
	ErrKeyTableFull = types.ErrKeyTableFull
)
