package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/sfo"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the known PARAM.SFO key names",
		Long: `The keys command prints the key catalogue. Other key names are accepted
too and are stored exactly as typed.

Example:
  sfoctl keys
  sfoctl keys --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys()
		},
	}
	return cmd
}

func runKeys() error {
	known := sfo.KnownKeys()
	names := make([]string, 0, len(known))
	for _, k := range known {
		names = append(names, k.String())
	}

	if jsonOut {
		return printJSON(names)
	}
	for _, name := range names {
		printInfo("%s\n", name)
	}
	return nil
}
