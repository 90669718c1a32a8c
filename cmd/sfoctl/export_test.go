package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBinary(t *testing.T) {
	resetFlags()
	path := writeTestSFO(t)
	out := filepath.Join(t.TempDir(), "COPY.SFO")

	_, err := captureOutput(t, func() error {
		return runExport([]string{path, out})
	})
	require.NoError(t, err)

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExportStdout(t *testing.T) {
	resetFlags()
	path := writeTestSFO(t)

	output, err := captureOutput(t, func() error {
		return runExport([]string{path})
	})
	require.NoError(t, err)

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), output)
}

func TestExportJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	path := writeTestSFO(t)
	out := filepath.Join(t.TempDir(), "param.json")

	_, err := captureOutput(t, func() error {
		return runExport([]string{path, out})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assertJSON(t, string(data))
	assertContains(t, string(data), []string{`"header"`, `"TITLE_ID"`, `"BLUS00000"`})
}

func TestExportReplacesOutputAtomically(t *testing.T) {
	resetFlags()
	path := writeTestSFO(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "COPY.SFO")
	require.NoError(t, os.WriteFile(out, []byte("stale contents that are longer than nothing"), 0o644))

	_, err := captureOutput(t, func() error {
		return runExport([]string{path, out})
	})
	require.NoError(t, err)

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestExportFailureLeavesNoFile(t *testing.T) {
	resetFlags()
	path := writeTestSFO(t)
	out := filepath.Join(t.TempDir(), "missing", "COPY.SFO")

	_, err := captureOutput(t, func() error {
		return runExport([]string{path, out})
	})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
