package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/internal/writer"
	"github.com/joshuapare/sfokit/sfo/printer"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file> [output]",
		Short: "Re-serialize a PARAM.SFO file or export it as JSON",
		Long: `The export command parses a file and writes it back out. Without an
output path the bytes (or JSON with --json) go to stdout.

Example:
  sfoctl export PARAM.SFO COPY.SFO
  sfoctl export PARAM.SFO --json > param.json
  sfoctl export PARAM.SFO param.json --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	c, err := openContainer(args[0])
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}

	var data []byte
	if jsonOut {
		var b bytes.Buffer
		opts := printer.DefaultOptions()
		opts.Format = printer.FormatJSON
		if err := printer.New(c, &b, opts).PrintDump(); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		data = b.Bytes()
	} else {
		data = c.Bytes()
	}

	if len(args) == 1 {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		return nil
	}

	w := &writer.FileWriter{Path: args[1]}
	if err := w.Commit(data); err != nil {
		return fmt.Errorf("failed to export to %s: %w", args[1], err)
	}
	printVerbose("Exported %d entries to %s\n", c.Len(), args[1])
	return nil
}
