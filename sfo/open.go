package sfo

import (
	"fmt"

	"github.com/joshuapare/sfokit/internal/mmfile"
	"github.com/joshuapare/sfokit/internal/writer"
)

// Open maps the file at path and parses it. The mapping is released before
// Open returns.
func Open(path string, opts ...Option) (*Container, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	c, err := ParseBytes(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Sink receives a complete serialized container.
type Sink interface {
	Commit(buf []byte) error
}

// SaveTo serializes c and hands the bytes to s.
func (c *Container) SaveTo(s Sink) error {
	return s.Commit(c.Bytes())
}

// SaveOptions controls Save.
type SaveOptions struct {
	// Backup copies the existing file to <path>.bak before replacing it.
	Backup bool
}

// Save writes c to path atomically. opts may be nil.
func (c *Container) Save(path string, opts *SaveOptions) error {
	w := &writer.FileWriter{Path: path}
	if opts != nil {
		w.Backup = opts.Backup
	}
	if err := c.SaveTo(w); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	c.log().Debug("sfo saved", "path", path, "bytes", c.Size(), "backup", w.Backup)
	return nil
}
