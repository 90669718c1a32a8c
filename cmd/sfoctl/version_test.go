package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlagMatchesCommand(t *testing.T) {
	resetFlags()
	require.Equal(t, version, rootCmd.Version)

	output, err := captureOutput(t, func() error {
		versionCmd.Run(versionCmd, nil)
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, output, "sfoctl "+rootCmd.Version+"\n")
}
