package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/internal/logger"
	"github.com/joshuapare/sfokit/sfo"
	"github.com/joshuapare/sfokit/sfo/printer"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	logJSON      bool
	configPath   string
	insertPolicy string
	outputFormat string
	backup       bool
)

// stdin is read by confirmation prompts and the shell.
var stdin io.Reader = os.Stdin

var rootCmd = &cobra.Command{
	Use:   "sfoctl",
	Short: "Inspect and edit PARAM.SFO files",
	Long: `sfoctl reads, edits and rewrites PARAM.SFO system file objects.
Every edit keeps the header, the index table and the data table consistent,
and files are replaced atomically.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write verbose logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/sfoctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&insertPolicy, "insert", "append", "Where new keys go (append, sorted)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Listing format (text, json, table)")
	rootCmd.PersistentFlags().BoolVar(&backup, "backup", false, "Copy the file to <file>.bak before replacing it")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup applies the config file to flags that were not given explicitly and
// initializes logging.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.apply(cmd.Flags()); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger.Init(logger.Options{
		Enabled: verbose || cfg.LogLevel != "",
		Level:   level,
		JSON:    logJSON,
		Output:  os.Stderr,
	})
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// containerOptions turns the global flags into container options.
func containerOptions() ([]sfo.Option, error) {
	policy, err := sfo.ParseInsertPolicy(insertPolicy)
	if err != nil {
		return nil, err
	}
	return []sfo.Option{sfo.WithInsertPolicy(policy), sfo.WithLogger(logger.L)}, nil
}

// openContainer opens path with the global options.
func openContainer(path string) (*sfo.Container, error) {
	opts, err := containerOptions()
	if err != nil {
		return nil, err
	}
	printVerbose("Opening: %s\n", path)
	return sfo.Open(path, opts...)
}

// printerOptions returns printer options for the current --format / --json.
func printerOptions() (printer.Options, error) {
	opts := printer.DefaultOptions()
	f, err := printer.ParseFormat(outputFormat)
	if err != nil {
		return opts, err
	}
	if jsonOut {
		f = printer.FormatJSON
	}
	opts.Format = f
	return opts, nil
}
