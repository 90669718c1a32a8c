package sfo

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/joshuapare/sfokit/internal/format"
	"github.com/joshuapare/sfokit/internal/logger"
)

// Codec types re-exported for convenience.
type (
	Header     = format.Header
	Descriptor = format.Descriptor
	Format     = format.Format
)

// Value formats (re-exported for convenience).
const (
	RawText           = format.RawText
	NulTerminatedText = format.NulTerminatedText
	UInt32            = format.UInt32
)

// Entry is a read-only view of one pair and its descriptor.
type Entry struct {
	Key        Key
	Value      Value
	Descriptor Descriptor
}

// Container is one parsed PARAM.SFO file. It owns the header, the descriptor
// table and the pairs, and keeps their offsets consistent across Add, Edit
// and Delete. A failed mutation leaves the container unchanged.
//
// Use New, Parse, ParseBytes or Open to obtain a Container; the zero value
// has no header and is not usable. A Container must not be mutated
// concurrently or while an All iteration is in progress.
type Container struct {
	header  format.Header
	table   format.Table
	store   store
	padding int
	opts    options
}

// New returns an empty container with the default version.
func New(opts ...Option) *Container {
	return &Container{
		header: format.NewHeader(format.DefaultVersion),
		store:  newStore(0),
		opts:   buildOptions(opts),
	}
}

// Parse reads r to the end and parses the result.
func Parse(r io.Reader, opts ...Option) (*Container, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sfo: %w", err)
	}
	return ParseBytes(b, opts...)
}

// ParseBytes parses a complete container. The returned Container does not
// reference b.
func ParseBytes(b []byte, opts ...Option) (*Container, error) {
	o := buildOptions(opts)

	if err := format.CheckMagic(b); err != nil {
		return nil, err
	}
	hdr, err := format.ParseHeader(b)
	if err != nil {
		return nil, err
	}
	if want := uint64(format.HeaderSize) + uint64(hdr.EntryCount)*format.DescriptorSize; uint64(hdr.KeyTableStart) != want {
		return nil, fmt.Errorf("key table start 0x%X, expected 0x%X for %d entries: %w",
			hdr.KeyTableStart, want, hdr.EntryCount, ErrCorrupt)
	}
	table, err := format.ParseTable(b, hdr.EntryCount)
	if err != nil {
		return nil, fmt.Errorf("index table: %w", err)
	}
	st, padding, err := parseStore(b, hdr, table, o.tolerant)
	if err != nil {
		return nil, fmt.Errorf("entries: %w", err)
	}

	c := &Container{
		header:  hdr,
		table:   table,
		store:   st,
		padding: padding,
		opts:    o,
	}
	c.log().Debug("sfo parsed",
		"version", hdr.Version,
		"entries", hdr.EntryCount,
		"key_table_start", hdr.KeyTableStart,
		"data_table_start", hdr.DataTableStart,
		"padding", padding,
	)
	return c, nil
}

// Header returns a copy of the current header.
func (c *Container) Header() Header { return c.header }

// Padding returns the number of zero bytes between the last key and the data table.
func (c *Container) Padding() int { return c.padding }

// Len returns the number of pairs.
func (c *Container) Len() int { return len(c.store.entries) }

// Size returns the exported size in bytes.
func (c *Container) Size() int {
	return int(c.header.DataTableStart) + int(c.table.DataLen())
}

// All yields every pair in file order joined with its descriptor.
func (c *Container) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, e := range c.store.entries {
			if !yield(Entry{Key: e.key, Value: e.value, Descriptor: c.table[i]}) {
				return
			}
		}
	}
}

// Keys returns the keys in file order.
func (c *Container) Keys() []Key {
	out := make([]Key, 0, len(c.store.entries))
	for _, e := range c.store.entries {
		out = append(out, e.key)
	}
	return out
}

// Lookup returns the entry stored under k.
func (c *Container) Lookup(k Key) (Entry, bool) {
	i, ok := c.store.lookup(k)
	if !ok {
		return Entry{}, false
	}
	e := c.store.entries[i]
	return Entry{Key: e.key, Value: e.value, Descriptor: c.table[i]}, true
}

// Get returns the value stored under k.
func (c *Container) Get(k Key) (Value, bool) {
	e, ok := c.Lookup(k)
	return e.Value, ok
}

// Has reports whether k is present.
func (c *Container) Has(k Key) bool {
	_, ok := c.store.lookup(k)
	return ok
}

// Add inserts a new pair. The position follows the container's InsertPolicy.
// Adding a key that is already present fails with ErrKeyExists.
func (c *Container) Add(k Key, v Value) error {
	if err := validatePair(k, v); err != nil {
		return err
	}
	if c.Has(k) {
		return fmt.Errorf("add %s: %w", k, ErrKeyExists)
	}

	idx := c.insertPos(k)
	keyLen := k.Len()
	total := c.store.totalKeyBytes()
	prevPad := c.padding
	newPad := format.Padding(total + keyLen)

	table, err := c.table.Insert(idx, total, keyLen, v.slot())
	if err != nil {
		return fmt.Errorf("add %s: %w", k, err)
	}

	c.store.add(idx, entry{key: k, value: v, width: keyLen})
	c.table = table
	c.header = c.header.OnInsert(keyLen, prevPad, newPad)
	c.padding = newPad

	c.log().Debug("sfo add", "key", k.String(), "index", idx, "format", v.Format().Name(), "len", v.EncodedLen())
	return nil
}

// Edit replaces the value stored under k. The slot is resized to fit the new
// value exactly and every following slot moves accordingly.
func (c *Container) Edit(k Key, v Value) error {
	idx, ok := c.store.lookup(k)
	if !ok {
		return fmt.Errorf("edit %s: %w", k, ErrKeyNotFound)
	}
	if err := validatePair(k, v); err != nil {
		return err
	}

	prevPad := c.padding
	newPad := format.Padding(c.store.totalKeyBytes())

	table, err := c.table.Edit(idx, v.slot())
	if err != nil {
		return fmt.Errorf("edit %s: %w", k, err)
	}

	c.store.edit(idx, v)
	c.table = table
	c.header = c.header.OnEdit(prevPad, newPad)
	c.padding = newPad

	c.log().Debug("sfo edit", "key", k.String(), "index", idx, "format", v.Format().Name(), "len", v.EncodedLen())
	return nil
}

// Set edits k when present and adds it otherwise.
func (c *Container) Set(k Key, v Value) error {
	if c.Has(k) {
		return c.Edit(k, v)
	}
	return c.Add(k, v)
}

// Delete removes the pair stored under k.
func (c *Container) Delete(k Key) error {
	idx, ok := c.store.lookup(k)
	if !ok {
		return fmt.Errorf("delete %s: %w", k, ErrKeyNotFound)
	}

	keyLen := c.store.entries[idx].width
	prevPad := c.padding
	newPad := format.Padding(c.store.totalKeyBytes() - keyLen)

	table, err := c.table.Delete(idx, keyLen)
	if err != nil {
		return fmt.Errorf("delete %s: %w", k, err)
	}

	c.store.delete(idx)
	c.table = table
	c.header = c.header.OnDelete(keyLen, prevPad, newPad)
	c.padding = newPad

	c.log().Debug("sfo delete", "key", k.String(), "index", idx)
	return nil
}

// Bytes returns the serialized container.
func (c *Container) Bytes() []byte {
	out := make([]byte, 0, c.Size())
	out = append(out, format.Magic[:]...)
	out = c.header.Append(out)
	out = c.table.Append(out)
	return c.store.appendBinary(out, c.table, c.padding)
}

// Export writes the serialized container to w. Only w can fail; the
// container stays valid and can be exported again.
func (c *Container) Export(w io.Writer) error {
	_, err := c.WriteTo(w)
	return err
}

// WriteTo implements io.WriterTo.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(c.Bytes()).WriteTo(w)
}

func (c *Container) insertPos(k Key) int {
	if c.opts.insert != InsertSorted {
		return len(c.store.entries)
	}
	name := k.String()
	for i, e := range c.store.entries {
		if e.key.String() > name {
			return i
		}
	}
	return len(c.store.entries)
}

func (c *Container) log() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return logger.L
}

func validatePair(k Key, v Value) error {
	name := k.String()
	if name == "" {
		return fmt.Errorf("empty key: %w", ErrInvalidValue)
	}
	if !Text(name).valid() {
		return fmt.Errorf("key %q: %w", name, ErrInvalidValue)
	}
	if !v.valid() {
		return fmt.Errorf("value for key %s must be UTF-8 without NUL: %w", name, ErrInvalidValue)
	}
	return nil
}
