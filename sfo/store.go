package sfo

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/sfokit/internal/buf"
	"github.com/joshuapare/sfokit/internal/format"
)

// entry is one key/value pair plus the layout facts the descriptor does not
// carry.
type entry struct {
	key   Key
	value Value
	width int    // key table bytes owned by the key, terminator included
	raw   []byte // slot bytes as parsed, nil once the value is replaced
}

// store is the ordered pair sequence. Position i corresponds to descriptor i.
type store struct {
	entries []entry
	index   map[Key]int
}

func newStore(n int) store {
	return store{
		entries: make([]entry, 0, n),
		index:   make(map[Key]int, n),
	}
}

// parseStore decodes the key and value tables described by h and t. It
// returns the pairs and the slack after the last key.
func parseStore(b []byte, h format.Header, t format.Table, tolerant bool) (store, int, error) {
	kts, dts := int(h.KeyTableStart), int(h.DataTableStart)
	if dts < kts {
		return store{}, 0, fmt.Errorf("data table start 0x%X before key table start 0x%X: %w",
			dts, kts, ErrCorrupt)
	}
	keyTable, ok := buf.Slice(b, kts, dts-kts)
	if !ok {
		return store{}, 0, fmt.Errorf("key table [0x%X, 0x%X): %w", kts, dts, ErrTruncated)
	}
	dataTable := b[dts:]
	if err := t.Validate(len(keyTable), len(dataTable)); err != nil {
		return store{}, 0, err
	}

	s := newStore(len(t))
	padding := len(keyTable)
	for i, d := range t {
		span := t.KeySpan(i, len(keyTable))
		rawKey := keyTable[int(d.KeyOffset) : int(d.KeyOffset)+span]
		text, terminated := buf.CutNUL(rawKey)
		if !utf8.Valid(text) {
			return store{}, 0, fmt.Errorf("key %d at 0x%X: %w", i, kts+int(d.KeyOffset), ErrInvalidUTF8)
		}
		key := ParseKey(string(text))
		if _, dup := s.index[key]; dup {
			return store{}, 0, fmt.Errorf("key %d %q repeats: %w", i, key, ErrCorrupt)
		}

		width := span
		if i == len(t)-1 {
			if terminated {
				width = len(text) + 1
			}
			padding = span - width
		}

		slot := dataTable[d.ValueOffset : d.ValueOffset+d.ValueMaxLen]
		e := entry{key: key, width: width}
		if err := e.decodeValue(d, slot, tolerant); err != nil {
			return store{}, 0, err
		}
		e.raw = slices.Clone(slot)
		s.index[key] = i
		s.entries = append(s.entries, e)
	}
	return s, padding, nil
}

func (e *entry) decodeValue(d format.Descriptor, slot []byte, tolerant bool) error {
	switch {
	case d.Format == format.UInt32:
		if len(slot) < format.UInt32Size {
			return fmt.Errorf("value for key %s (%d byte slot): %w", e.key, len(slot), ErrTruncated)
		}
		e.value = Number(buf.U32LE(slot))
		return nil
	case d.Format.IsText():
		payload := slot[:d.ValueLen]
		if d.Format == format.NulTerminatedText {
			payload, _ = buf.CutNUL(payload)
		}
		if utf8.Valid(payload) {
			e.value = Text(string(payload))
			return nil
		}
		if !tolerant {
			return fmt.Errorf("value for key %s: %w", e.key, ErrInvalidUTF8)
		}
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(payload)
		if err != nil {
			return fmt.Errorf("value for key %s: %w", e.key, ErrInvalidUTF8)
		}
		e.value = Text(string(decoded))
		return nil
	default:
		return fmt.Errorf("value for key %s: %w", e.key, ErrUnknownFormat)
	}
}

func (s *store) lookup(k Key) (int, bool) {
	i, ok := s.index[k]
	return i, ok
}

// add inserts e at idx and shifts the index of every later pair.
func (s *store) add(idx int, e entry) {
	s.entries = append(s.entries, entry{})
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = e
	s.reindex(idx)
}

// edit replaces the value at idx and drops the parsed slot bytes.
func (s *store) edit(idx int, v Value) {
	s.entries[idx].value = v
	s.entries[idx].raw = nil
}

// delete removes the pair at idx.
func (s *store) delete(idx int) {
	delete(s.index, s.entries[idx].key)
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.reindex(idx)
}

func (s *store) reindex(from int) {
	for i := from; i < len(s.entries); i++ {
		s.index[s.entries[i].key] = i
	}
}

// totalKeyBytes is the key table size without padding.
func (s *store) totalKeyBytes() int {
	n := 0
	for _, e := range s.entries {
		n += e.width
	}
	return n
}

// appendBinary writes the key table, padding, and value table.
func (s *store) appendBinary(dst []byte, t format.Table, padding int) []byte {
	for _, e := range s.entries {
		name := e.key.String()
		dst = append(dst, name...)
		dst = buf.AppendZeros(dst, e.width-len(name))
	}
	dst = buf.AppendZeros(dst, padding)

	for i, e := range s.entries {
		start := len(dst)
		if e.raw != nil {
			dst = append(dst, e.raw...)
		} else {
			dst = e.value.appendPayload(dst)
		}
		dst = buf.AppendZeros(dst, int(t[i].ValueMaxLen)-(len(dst)-start))
	}
	return dst
}
