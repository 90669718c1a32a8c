package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sfokit/internal/format"
)

func TestBuildLayout(t *testing.T) {
	data := Build(t, Text("TITLE", "Test", 0))

	h, err := format.ParseHeader(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x24), h.KeyTableStart)
	assert.Equal(t, uint32(0x2C), h.DataTableStart)
	assert.Equal(t, uint32(1), h.EntryCount)
	assert.Len(t, data, 0x2C+5)

	table, err := format.ParseTable(data, h.EntryCount)
	require.NoError(t, err)
	assert.Equal(t, format.Descriptor{Format: format.NulTerminatedText, ValueLen: 5, ValueMaxLen: 5}, table[0])
}

func TestBuildSlack(t *testing.T) {
	data := Game(t)

	h, err := format.ParseHeader(data)
	require.NoError(t, err)
	table, err := format.ParseTable(data, h.EntryCount)
	require.NoError(t, err)
	require.NoError(t, table.Validate(int(h.DataTableStart-h.KeyTableStart), len(data)-int(h.DataTableStart)))
	assert.Equal(t, 0, int(h.DataTableStart)%4)
}

func TestWriteTemp(t *testing.T) {
	path := WriteTemp(t, []byte{1, 2, 3}, "x.sfo")
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
