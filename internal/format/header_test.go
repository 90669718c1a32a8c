package format

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseHeaderSuccess(t *testing.T) {
	b := make([]byte, HeaderSize)
	copy(b, Magic[:])
	binary.LittleEndian.PutUint32(b[HeaderVersionOffset:], DefaultVersion)
	binary.LittleEndian.PutUint32(b[HeaderKeyTableOffset:], 0x24)
	binary.LittleEndian.PutUint32(b[HeaderDataTableOffset:], 0x2C)
	binary.LittleEndian.PutUint32(b[HeaderEntryCountOffset:], 1)

	if err := CheckMagic(b); err != nil {
		t.Fatalf("CheckMagic: %v", err)
	}
	hdr, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	want := Header{Version: 0x101, KeyTableStart: 0x24, DataTableStart: 0x2C, EntryCount: 1}
	if hdr != want {
		t.Fatalf("header = %+v, want %+v", hdr, want)
	}

	out := append(Magic[:0:0], Magic[:]...)
	out = hdr.Append(out)
	if !bytes.Equal(out, b) {
		t.Fatalf("Append = % x, want % x", out, b)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	b := make([]byte, HeaderSize)
	if _, err := ParseHeader(b[:10]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncation error, got %v", err)
	}
	if err := CheckMagic(b[:2]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated magic, got %v", err)
	}
	copy(b, []byte{0x7F, 'E', 'L', 'F'})
	if err := CheckMagic(b); !errors.Is(err, ErrUnknownMagic) {
		t.Fatalf("expected magic error, got %v", err)
	}
}

func TestHeaderMutatorsAreInverse(t *testing.T) {
	start := NewHeader(DefaultVersion)

	// "TITLE\0" is 6 bytes, padded to 8.
	inserted := start.OnInsert(6, 0, 2)
	want := Header{Version: DefaultVersion, KeyTableStart: 0x24, DataTableStart: 0x2C, EntryCount: 1}
	if inserted != want {
		t.Fatalf("OnInsert = %+v, want %+v", inserted, want)
	}

	deleted := inserted.OnDelete(6, 2, 0)
	if deleted != start {
		t.Fatalf("OnDelete = %+v, want %+v", deleted, start)
	}
	if deleted.DataTableStart != deleted.KeyTableStart {
		t.Fatalf("empty container must have data table at key table start")
	}
}

func TestHeaderOnEdit(t *testing.T) {
	h := Header{KeyTableStart: 0x24, DataTableStart: 0x2C, EntryCount: 1}
	if got := h.OnEdit(2, 2); got != h {
		t.Fatalf("OnEdit with equal padding changed header: %+v", got)
	}
	if got := h.OnEdit(2, 1); got.DataTableStart != 0x2B || got.KeyTableStart != 0x24 || got.EntryCount != 1 {
		t.Fatalf("OnEdit(2, 1) = %+v", got)
	}
}

func TestPadding(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 6: 2, 9: 3} {
		if got := Padding(n); got != want {
			t.Errorf("Padding(%d) = %d, want %d", n, got, want)
		}
	}
}
