package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeysCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, runKeys)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 41)
	require.Equal(t, "ACCOUNT_ID", lines[0])
	require.Equal(t, "XMB_APPS", lines[40])

	resetFlags()
	jsonOut = true
	output, err = captureOutput(t, runKeys)
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"PARENTAL_LEVEL_x"`})
}
