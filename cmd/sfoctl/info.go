package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a PARAM.SFO file and report its header",
		Long: `The info command parses a PARAM.SFO file, checks every table offset and
displays the header fields.

Example:
  sfoctl info PARAM.SFO
  sfoctl info PARAM.SFO --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	c, err := openContainer(path)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	h := c.Header()

	// Output as JSON if requested
	if jsonOut {
		result := map[string]any{
			"file":             path,
			"size":             c.Size(),
			"version":          h.Version,
			"key_table_start":  h.KeyTableStart,
			"data_table_start": h.DataTableStart,
			"entries":          h.EntryCount,
			"padding":          c.Padding(),
		}
		return printJSON(result)
	}

	// Text output
	printInfo("\nPARAM.SFO Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Size: %d bytes\n", c.Size())
	printInfo("  Version: 0x%X\n", h.Version)
	printInfo("  Key table start: 0x%X\n", h.KeyTableStart)
	printInfo("  Data table start: 0x%X\n", h.DataTableStart)
	printInfo("  Entries: %d\n", h.EntryCount)
	printInfo("  Padding: %d\n", c.Padding())

	printInfo("\nValidation:\n")
	printInfo("  ✓ Structure valid\n")

	return nil
}
