package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sfokit/sfo"
)

// writeTestSFO writes a small PARAM.SFO into a temp dir and returns its path.
func writeTestSFO(t *testing.T) string {
	t.Helper()

	c := sfo.New(sfo.WithInsertPolicy(sfo.InsertSorted))
	require.NoError(t, c.Add(sfo.KeyAppVer.Key(), sfo.Text("01.00")))
	require.NoError(t, c.Add(sfo.KeyAttribute.Key(), sfo.Number(0x20)))
	require.NoError(t, c.Add(sfo.KeyCategory.Key(), sfo.Text("HG")))
	require.NoError(t, c.Add(sfo.KeyTitle.Key(), sfo.Text("Test Game")))
	require.NoError(t, c.Add(sfo.KeyTitleID.Key(), sfo.Text("BLUS00000")))

	path := filepath.Join(t.TempDir(), "PARAM.SFO")
	require.NoError(t, c.Save(path, nil))
	return path
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	logJSON = false
	configPath = ""
	insertPolicy = "append"
	outputFormat = "text"
	backup = false
	outputPath = ""
	setType = "text"
	getShowType = false
	listLayout = false
	listKeys = false
	deleteForce = false
	deleteDryRun = false
	stdin = strings.NewReader("")
}

// reopen parses the file at path.
func reopen(t *testing.T, path string) *sfo.Container {
	t.Helper()
	c, err := sfo.Open(path)
	require.NoError(t, err)
	return c
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
