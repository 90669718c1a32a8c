package sfo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sfokit/internal/format"
)

// scenarioBytes is a container with a single TITLE = "Test" pair.
var scenarioBytes = []byte{
	0x00, 0x50, 0x53, 0x46, // magic
	0x01, 0x01, 0x00, 0x00, // version
	0x24, 0x00, 0x00, 0x00, // key table start
	0x2C, 0x00, 0x00, 0x00, // data table start
	0x01, 0x00, 0x00, 0x00, // entries
	0x00, 0x00, 0x04, 0x02, // key offset, format
	0x05, 0x00, 0x00, 0x00, // value len
	0x05, 0x00, 0x00, 0x00, // value max len
	0x00, 0x00, 0x00, 0x00, // value offset
	'T', 'I', 'T', 'L', 'E', 0x00, 0x00, 0x00,
	'T', 'e', 's', 't', 0x00,
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

// requireConsistent checks every cross-table invariant of c and that its
// serialization parses back to the same pairs.
func requireConsistent(t *testing.T, c *Container) {
	t.Helper()

	h := c.Header()
	require.Equal(t, int(h.EntryCount), c.Len(), "entry count vs pairs")
	require.Len(t, c.table, c.Len(), "descriptor table vs pairs")
	require.Equal(t, uint32(format.HeaderSize+format.DescriptorSize*c.Len()), h.KeyTableStart)
	require.Equal(t, int(h.DataTableStart-h.KeyTableStart), c.store.totalKeyBytes()+c.Padding())
	require.Equal(t, 0, int(h.DataTableStart)%format.KeyTableAlignment, "data table alignment")
	require.GreaterOrEqual(t, c.Padding(), 0)
	require.LessOrEqual(t, c.Padding(), 3)

	var keyOff, valOff uint32
	for e := range c.All() {
		d := e.Descriptor
		require.Equal(t, keyOff, uint32(d.KeyOffset), "key offset of %s", e.Key)
		require.Equal(t, valOff, d.ValueOffset, "value offset of %s", e.Key)
		require.LessOrEqual(t, d.ValueLen, d.ValueMaxLen)
		keyOff += uint32(c.store.entries[c.store.index[e.Key]].width)
		valOff += d.ValueMaxLen
	}

	out := c.Bytes()
	require.Len(t, out, c.Size())

	again, err := ParseBytes(out)
	require.NoError(t, err)
	require.Equal(t, collect(c), collect(again))
	require.Equal(t, out, again.Bytes())
}

func collect(c *Container) []Entry {
	var out []Entry
	for e := range c.All() {
		out = append(out, e)
	}
	return out
}
