package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/sfo/printer"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of the header, index table and entries",
		Long: `The dump command prints every field of a PARAM.SFO file: the header,
each index table descriptor and each key/value pair.

Example:
  sfoctl dump PARAM.SFO
  sfoctl dump PARAM.SFO --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	c, err := openContainer(args[0])
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}

	opts, err := printerOptions()
	if err != nil {
		return err
	}
	return printer.New(c, os.Stdout, opts).PrintDump()
}
