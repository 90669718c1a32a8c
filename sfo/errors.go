package sfo

import "github.com/joshuapare/sfokit/pkg/types"

// Errors returned by this package, re-exported for convenience.
var (
	ErrUnknownMagic  = types.ErrUnknownMagic
	ErrTruncated     = types.ErrTruncated
	ErrBadFormatTag  = types.ErrBadFormatTag
	ErrUnknownFormat = types.ErrUnknownFormat
	ErrCorrupt       = types.ErrCorrupt
	ErrInvalidUTF8   = types.ErrInvalidUTF8
	ErrKeyNotFound   = types.ErrKeyNotFound
	ErrKeyExists     = types.ErrKeyExists
	ErrInvalidValue  = types.ErrInvalidValue
	ErrKeyTableFull  = types.ErrKeyTableFull
)
