package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/sfo"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "show-type", false, "Show the value format")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print one value",
		Long: `The get command prints the value stored under a key. Text is printed
as is and numbers in decimal.

Example:
  sfoctl get PARAM.SFO TITLE
  sfoctl get PARAM.SFO ATTRIBUTE --show-type
  sfoctl get PARAM.SFO TITLE_ID --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	c, err := openContainer(args[0])
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}

	key := sfo.ParseKey(args[1])
	e, ok := c.Lookup(key)
	if !ok {
		return fmt.Errorf("key %s: %w", key, sfo.ErrKeyNotFound)
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]any{
			"key":    key.String(),
			"format": e.Descriptor.Format.Name(),
		}
		if n, ok := e.Value.AsNumber(); ok {
			result["value"] = n
		} else {
			result["value"] = e.Value.String()
		}
		return printJSON(result)
	}

	if getShowType {
		printInfo("%s (%s)\n", e.Value, e.Descriptor.Format)
		return nil
	}
	printInfo("%s\n", e.Value)
	return nil
}
