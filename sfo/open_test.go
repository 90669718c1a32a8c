package sfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sfokit/internal/testutil"
	"github.com/joshuapare/sfokit/internal/writer"
)

func TestOpenSave(t *testing.T) {
	data := testutil.Game(t)
	path := testutil.WriteTemp(t, data, "PARAM.SFO")

	c, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, data, c.Bytes())

	require.NoError(t, c.Set(KeyTitle.Key(), Text("Renamed")))
	require.NoError(t, c.Save(path, &SaveOptions{Backup: true}))

	backup, err := os.ReadFile(path + writer.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, data, backup)

	again, err := Open(path)
	require.NoError(t, err)
	v, _ := again.Get(KeyTitle.Key())
	assert.Equal(t, Text("Renamed"), v)
	assert.Equal(t, c.Bytes(), again.Bytes())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.sfo"))
	require.Error(t, err)
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := testutil.WriteTemp(t, []byte("not an sfo file at all"), "garbage")

	_, err := Open(path)
	require.ErrorIs(t, err, ErrUnknownMagic)
}

func TestSaveToMemory(t *testing.T) {
	c, err := ParseBytes(scenarioBytes)
	require.NoError(t, err)

	var sink writer.MemWriter
	require.NoError(t, c.SaveTo(&sink))
	assert.Equal(t, scenarioBytes, sink.Buf)
}

func TestSaveNewFileWithoutBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.sfo")
	c := New()
	require.NoError(t, c.Add(KeyTitle.Key(), Text("Test")))
	require.NoError(t, c.Save(path, nil))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, scenarioBytes, got)

	_, err = os.Stat(path + writer.BackupSuffix)
	assert.True(t, os.IsNotExist(err))
}
