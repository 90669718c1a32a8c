package format

import (
	"fmt"
	"strings"

	"github.com/joshuapare/sfokit/internal/buf"
)

// Table is the ordered descriptor table. Mutators never modify the receiver;
// they return a new Table so callers can commit several coupled changes at
// once or not at all.
type Table []Descriptor

// ParseTable decodes count descriptors starting at HeaderSize.
func ParseTable(b []byte, count uint32) (Table, error) {
	size := uint64(count) * DescriptorSize
	if uint64(len(b)) < HeaderSize || size > uint64(len(b)-HeaderSize) {
		return nil, fmt.Errorf("descriptor table (%d entries): %w", count, ErrTruncated)
	}
	t := make(Table, 0, count)
	off := HeaderSize
	for i := range int(count) {
		d, err := DecodeDescriptor(b[off : off+DescriptorSize])
		if err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
		t = append(t, d)
		off += DescriptorSize
	}
	return t, nil
}

// Append writes every record in order.
func (t Table) Append(dst []byte) []byte {
	for _, d := range t {
		dst = d.Append(dst)
	}
	return dst
}

// KeySpan returns the number of key table bytes owned by entry idx. The last
// entry owns everything up to keyTableLen, which includes the padding.
func (t Table) KeySpan(idx int, keyTableLen int) int {
	if idx+1 < len(t) {
		return int(t[idx+1].KeyOffset) - int(t[idx].KeyOffset)
	}
	return keyTableLen - int(t[idx].KeyOffset)
}

// DataLen returns the size of the data table described by t.
func (t Table) DataLen() uint32 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].SlotEnd()
}

// Validate checks that key offsets are increasing and start at zero, that
// every key lies inside keyTableLen, and that value slots are packed back to
// back inside dataTableLen.
func (t Table) Validate(keyTableLen, dataTableLen int) error {
	var next uint32
	for i, d := range t {
		if i == 0 && d.KeyOffset != 0 {
			return fmt.Errorf("descriptor 0: key offset 0x%X, expected 0: %w", d.KeyOffset, ErrCorrupt)
		}
		if i > 0 && d.KeyOffset <= t[i-1].KeyOffset {
			return fmt.Errorf("descriptor %d: key offset 0x%X not after 0x%X: %w",
				i, d.KeyOffset, t[i-1].KeyOffset, ErrCorrupt)
		}
		if int(d.KeyOffset) >= keyTableLen {
			return fmt.Errorf("descriptor %d: key offset 0x%X outside key table (%d bytes): %w",
				i, d.KeyOffset, keyTableLen, ErrCorrupt)
		}
		if d.ValueOffset != next {
			return fmt.Errorf("descriptor %d: value offset 0x%X, expected 0x%X: %w",
				i, d.ValueOffset, next, ErrCorrupt)
		}
		if d.ValueLen > d.ValueMaxLen {
			return fmt.Errorf("descriptor %d: value length %d exceeds slot %d: %w",
				i, d.ValueLen, d.ValueMaxLen, ErrCorrupt)
		}
		end, ok := buf.AddOverflowSafe(int(d.ValueOffset), int(d.ValueMaxLen))
		if !ok || end > dataTableLen {
			return fmt.Errorf("descriptor %d: slot [0x%X, +%d) outside data table: %w",
				i, d.ValueOffset, d.ValueMaxLen, ErrTruncated)
		}
		next = uint32(end)
	}
	return nil
}

// Insert returns a table with a new descriptor for slot at idx. The new key
// takes the offset of the entry currently at idx, or keyEnd when appending;
// every following entry moves by keyLen and by the new slot size.
func (t Table) Insert(idx, keyEnd, keyLen int, s Slot) (Table, error) {
	if idx < 0 || idx > len(t) {
		return nil, fmt.Errorf("insert at %d of %d: %w", idx, len(t), ErrNotFound)
	}
	d := Descriptor{
		Format:      s.Format,
		ValueLen:    s.Len,
		ValueMaxLen: s.Len,
	}
	if idx < len(t) {
		d.KeyOffset = t[idx].KeyOffset
		d.ValueOffset = t[idx].ValueOffset
	} else {
		if keyEnd > MaxKeyOffset {
			return nil, fmt.Errorf("key offset 0x%X: %w", keyEnd, ErrKeyTableFull)
		}
		d.KeyOffset = uint16(keyEnd)
		d.ValueOffset = t.DataLen()
	}
	if len(t) > idx && int(t[len(t)-1].KeyOffset)+keyLen > MaxKeyOffset {
		return nil, fmt.Errorf("key offset 0x%X: %w", int(t[len(t)-1].KeyOffset)+keyLen, ErrKeyTableFull)
	}

	out := make(Table, 0, len(t)+1)
	out = append(out, t[:idx]...)
	out = append(out, d)
	for _, next := range t[idx:] {
		next.KeyOffset += uint16(keyLen)
		next.ValueOffset += s.Len
		out = append(out, next)
	}
	return out, nil
}

// Edit returns a table whose entry idx describes slot. The slot is sized to
// fit exactly; following value offsets move by the change in slot size.
func (t Table) Edit(idx int, s Slot) (Table, error) {
	if idx < 0 || idx >= len(t) {
		return nil, fmt.Errorf("edit at %d of %d: %w", idx, len(t), ErrNotFound)
	}
	delta := int64(s.Len) - int64(t[idx].ValueMaxLen)

	out := make(Table, len(t))
	copy(out, t)
	out[idx].Format = s.Format
	out[idx].ValueLen = s.Len
	out[idx].ValueMaxLen = s.Len
	for i := idx + 1; i < len(out); i++ {
		out[i].ValueOffset = uint32(int64(out[i].ValueOffset) + delta)
	}
	return out, nil
}

// Delete returns a table without entry idx. Following entries move down by
// keyLen and by the removed slot size.
func (t Table) Delete(idx, keyLen int) (Table, error) {
	if idx < 0 || idx >= len(t) {
		return nil, fmt.Errorf("delete at %d of %d: %w", idx, len(t), ErrNotFound)
	}
	removed := t[idx]

	out := make(Table, 0, len(t)-1)
	out = append(out, t[:idx]...)
	for _, next := range t[idx+1:] {
		next.KeyOffset -= uint16(keyLen)
		next.ValueOffset -= removed.ValueMaxLen
		out = append(out, next)
	}
	return out, nil
}

func (t Table) String() string {
	var sb strings.Builder
	sb.WriteString("IndexTable:")
	for i, d := range t {
		fmt.Fprintf(&sb, "\nKey %d:\n%s\n", i, d)
	}
	return sb.String()
}
