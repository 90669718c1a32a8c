package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds defaults read from the config file. Flags given on the
// command line win.
type Config struct {
	InsertPolicy string `yaml:"insert_policy"`
	Backup       *bool  `yaml:"backup"`
	OutputFormat string `yaml:"output_format"`
	LogLevel     string `yaml:"log_level"`
}

// defaultConfigPath returns $XDG_CONFIG_HOME/sfoctl/config.yaml or the
// platform equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sfoctl", "config.yaml")
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file is not an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// apply sets every flag the user did not pass explicitly from cfg.
func (cfg Config) apply(flags *pflag.FlagSet) error {
	set := func(name, value string) error {
		f := flags.Lookup(name)
		if f == nil || f.Changed || value == "" {
			return nil
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("config %s: %w", name, err)
		}
		return nil
	}

	if err := set("insert", cfg.InsertPolicy); err != nil {
		return err
	}
	if err := set("format", cfg.OutputFormat); err != nil {
		return err
	}
	if cfg.Backup != nil {
		if err := set("backup", strconv.FormatBool(*cfg.Backup)); err != nil {
			return err
		}
	}
	return nil
}
