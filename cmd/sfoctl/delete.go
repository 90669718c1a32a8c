package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/sfo"
)

var (
	deleteForce  bool
	deleteDryRun bool
)

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Don't prompt for confirmation")
	cmd.Flags().BoolVar(&deleteDryRun, "dry-run", false, "Show what would be deleted")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to this file instead of replacing the input")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <file> <key>",
		Aliases: []string{"rm"},
		Short:   "Delete a key/value pair",
		Long: `The delete command removes a key and its value. Every following key and
value moves down so the file stays packed.

Example:
  sfoctl delete PARAM.SFO TITLE_00
  sfoctl delete PARAM.SFO TITLE_00 --force
  sfoctl delete PARAM.SFO TITLE_00 --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	path := args[0]
	key := sfo.ParseKey(args[1])

	c, err := openContainer(path)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	e, ok := c.Lookup(key)
	if !ok {
		return fmt.Errorf("failed to delete: key %s: %w", key, sfo.ErrKeyNotFound)
	}

	// Confirm deletion (unless forced or dry-run)
	if !deleteForce && !deleteDryRun && !quiet {
		printInfo("\nDeleting from %s:\n", path)
		printInfo("  Key: %s\n", key)
		printInfo("  Value: %s\n", e.Value)
		printInfo("\n⚠ This will delete the key.\n")

		if !confirm(bufio.NewReader(stdin)) {
			printInfo("Aborted.\n")
			return nil
		}
	}

	if deleteDryRun {
		if jsonOut {
			return printJSON(map[string]any{"file": path, "key": key.String(), "dry_run": true})
		}
		printInfo("\n✓ Would delete:\n")
		printInfo("  Key: %s\n", key)
		printInfo("\n(dry-run mode, no changes made)\n")
		return nil
	}

	if err := c.Delete(key); err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}
	target, err := saveContainer(c, path)
	if err != nil {
		return err
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]any{
			"file":    target,
			"key":     key.String(),
			"entries": c.Len(),
			"success": true,
		}
		return printJSON(result)
	}

	printInfo("\n✓ Key deleted successfully\n")
	if backup && target == path {
		printInfo("Backup created: %s.bak\n", path)
	}
	return nil
}

// confirm asks for a yes/no answer on r. Anything but y or yes is no.
func confirm(r *bufio.Reader) bool {
	printInfo("Proceed? [y/N]: ")
	response, _ := r.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
