package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "insert_policy: sorted\nbackup: true\noutput_format: table\nlog_level: debug\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sorted", cfg.InsertPolicy)
	require.NotNil(t, cfg.Backup)
	assert.True(t, *cfg.Backup)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "backup: [not, a, bool]\n"))
	require.Error(t, err)
}

func TestConfigApplyKeepsExplicitFlags(t *testing.T) {
	var policy, format string
	var bak bool
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&policy, "insert", "append", "")
	flags.StringVar(&format, "format", "text", "")
	flags.BoolVar(&bak, "backup", false, "")
	require.NoError(t, flags.Parse([]string{"--format", "json"}))

	yes := true
	cfg := Config{InsertPolicy: "sorted", OutputFormat: "table", Backup: &yes}
	require.NoError(t, cfg.apply(flags))

	assert.Equal(t, "sorted", policy)
	assert.Equal(t, "json", format, "explicit flag wins")
	assert.True(t, bak)
}

func TestSetupReadsConfig(t *testing.T) {
	resetFlags()
	configPath = writeConfig(t, "insert_policy: sorted\n")
	t.Cleanup(resetFlags)

	cmd := newListCmd()
	cmd.Flags().AddFlagSet(rootCmd.PersistentFlags())
	require.NoError(t, setup(cmd, nil))
	assert.Equal(t, "sorted", insertPolicy)
}
