package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/sfo/printer"
)

var (
	listLayout bool
	listKeys   bool
)

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listLayout, "layout", false, "Show slot lengths and offsets")
	cmd.Flags().BoolVar(&listKeys, "keys-only", false, "Print key names only")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list <file>",
		Aliases: []string{"ls"},
		Short:   "List key/value pairs",
		Long: `The list command prints every key/value pair in file order.

Example:
  sfoctl list PARAM.SFO
  sfoctl list PARAM.SFO --layout --format table
  sfoctl list PARAM.SFO --keys-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	c, err := openContainer(args[0])
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}

	if listKeys {
		keys := c.Keys()
		if jsonOut {
			names := make([]string, 0, len(keys))
			for _, k := range keys {
				names = append(names, k.String())
			}
			return printJSON(names)
		}
		for _, k := range keys {
			printInfo("%s\n", k)
		}
		return nil
	}

	opts, err := printerOptions()
	if err != nil {
		return err
	}
	opts.ShowLayout = listLayout
	return printer.New(c, os.Stdout, opts).PrintEntries()
}
