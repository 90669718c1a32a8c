// Package testutil builds PARAM.SFO fixtures for tests.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/sfokit/internal/format"
)

// Pair describes one pair of a hand-built container.
type Pair struct {
	Key      string
	Format   format.Format
	Payload  []byte
	ValueLen uint32 // 0 means len(Payload)
	MaxLen   uint32 // 0 means ValueLen
	KeyPad   int    // extra zero bytes after the key terminator
}

// Text returns a NUL-terminated text pair with a slot of maxLen bytes
// (0 for an exact fit).
func Text(key, s string, maxLen uint32) Pair {
	return Pair{Key: key, Format: format.NulTerminatedText, Payload: append([]byte(s), 0), MaxLen: maxLen}
}

// RawText returns a text pair without terminator.
func RawText(key, s string, maxLen uint32) Pair {
	return Pair{Key: key, Format: format.RawText, Payload: []byte(s), MaxLen: maxLen}
}

// Number returns a uint32 pair.
func Number(key string, n uint32) Pair {
	return Pair{Key: key, Format: format.UInt32, Payload: binary.LittleEndian.AppendUint32(nil, n)}
}

// Build lays pairs out the way the PS3 SDK does: packed keys, a 4-byte
// aligned data table and packed slots.
//
// Example:
//
//	data := testutil.Build(t,
//		testutil.Text("TITLE", "Test", 128),
//		testutil.Number("BOOTABLE", 1),
//	)
func Build(t testing.TB, pairs ...Pair) []byte {
	t.Helper()

	var keys []byte
	keyOffs := make([]int, 0, len(pairs))
	for _, p := range pairs {
		keyOffs = append(keyOffs, len(keys))
		keys = append(keys, p.Key...)
		keys = append(keys, make([]byte, 1+p.KeyPad)...)
	}
	pad := format.Padding(len(keys))
	kts := format.HeaderSize + len(pairs)*format.DescriptorSize
	dts := kts + len(keys) + pad

	out := append([]byte(nil), format.Magic[:]...)
	out = binary.LittleEndian.AppendUint32(out, format.DefaultVersion)
	out = binary.LittleEndian.AppendUint32(out, uint32(kts))
	out = binary.LittleEndian.AppendUint32(out, uint32(dts))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(pairs)))

	var data []byte
	for i, p := range pairs {
		vl := p.ValueLen
		if vl == 0 {
			vl = uint32(len(p.Payload))
		}
		ml := p.MaxLen
		if ml == 0 {
			ml = vl
		}
		if int(ml) < len(p.Payload) {
			t.Fatalf("pair %s: %d byte payload larger than %d byte slot", p.Key, len(p.Payload), ml)
		}

		out = binary.LittleEndian.AppendUint16(out, uint16(keyOffs[i]))
		out = append(out, format.FormatTag, byte(p.Format))
		out = binary.LittleEndian.AppendUint32(out, vl)
		out = binary.LittleEndian.AppendUint32(out, ml)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))

		slot := make([]byte, ml)
		copy(slot, p.Payload)
		data = append(data, slot...)
	}

	out = append(out, keys...)
	out = append(out, make([]byte, pad)...)
	return append(out, data...)
}

// Game resembles a PS3 game PARAM.SFO: reserved slack in text slots, a raw
// text value, numbers, and a key outside the catalogue.
func Game(t testing.TB) []byte {
	t.Helper()
	return Build(t,
		RawText("ACCOUNT_ID", "0000000000000000", 16),
		Text("APP_VER", "01.00", 8),
		Number("ATTRIBUTE", 0x20),
		Number("BOOTABLE", 1),
		Text("CATEGORY", "HG", 4),
		Number("PARENTAL_LEVEL", 5),
		Text("PS3_SYSTEM_VER", "03.5500", 8),
		Number("RESOLUTION", 0x3F),
		Text("TITLE", "Test Game", 128),
		Text("TITLE_00", "Jeu de test", 128),
		Text("TITLE_ID", "BLUS00000", 16),
		Text("VERSION", "01.00", 8),
	)
}

// WriteTemp writes data to name inside a per-test temporary directory and
// returns the path.
//
// Example:
//
//	path := testutil.WriteTemp(t, testutil.Game(t), "PARAM.SFO")
func WriteTemp(t testing.TB, data []byte, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
