package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/joshuapare/sfokit/sfo"
	"github.com/joshuapare/sfokit/sfo/printer"
)

func init() {
	rootCmd.AddCommand(newShellCmd())
}

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell <file>",
		Short: "Edit a PARAM.SFO file interactively",
		Long: `The shell command opens a file and reads editing commands from stdin.
Arguments are split like a POSIX shell, so quote values that contain spaces.
Changes are kept in memory until "save".

Example:
  sfoctl shell PARAM.SFO
  > set TITLE "My Game"
  > set ATTRIBUTE 0x20 --number
  > save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(args)
		},
	}
	return cmd
}

func runShell(args []string) error {
	c, err := openContainer(args[0])
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	return newShell(c, args[0], stdin, os.Stdout).run()
}

const shellHelp = `Commands:
  list [--layout]              list key/value pairs
  get <key>                    print one value
  set <key> <value> [--number] set a value, adding the key when missing
  add <key> <value> [--number] add a new pair
  edit <key> <value> [--number] change an existing value
  delete <key>                 delete a pair (asks for confirmation)
  dump                         print header, index table and entries
  save [path]                  write the file (or save as path)
  help                         show this help
  quit                         leave the shell
`

var errQuit = errors.New("quit")

// shell is an interactive editing session over one container.
type shell struct {
	c     *sfo.Container
	path  string
	in    *bufio.Reader
	out   io.Writer
	dirty bool
}

func newShell(c *sfo.Container, path string, in io.Reader, out io.Writer) *shell {
	return &shell{c: c, path: path, in: bufio.NewReader(in), out: out}
}

// run reads commands until quit or end of input.
func (s *shell) run() error {
	fmt.Fprintf(s.out, "%s: %d entries. Type \"help\" for commands.\n", s.path, s.c.Len())
	for {
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if cmdErr := s.exec(line); errors.Is(cmdErr, errQuit) {
				return nil
			} else if cmdErr != nil {
				fmt.Fprintf(s.out, "error: %v\n", cmdErr)
			}
		}
		if err == io.EOF {
			if s.dirty {
				fmt.Fprintln(s.out, "\nunsaved changes discarded")
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// exec runs one command line.
func (s *shell) exec(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	number := false
	words = slices.DeleteFunc(words, func(w string) bool {
		if w == "--number" || w == "-n" {
			number = true
			return true
		}
		return false
	})
	layout := slices.Contains(words, "--layout")
	words = slices.DeleteFunc(words, func(w string) bool { return w == "--layout" })
	if len(words) == 0 {
		return nil
	}

	cmd, args := words[0], words[1:]
	switch cmd {
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
		return nil
	case "quit", "exit", "q":
		if s.dirty {
			fmt.Fprintln(s.out, "Discard unsaved changes?")
			if !s.confirm() {
				return nil
			}
		}
		return errQuit
	case "list", "ls":
		opts := printer.DefaultOptions()
		opts.ShowLayout = layout
		return printer.New(s.c, s.out, opts).PrintEntries()
	case "dump":
		return printer.New(s.c, s.out, printer.DefaultOptions()).PrintDump()
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("usage: get <key>")
		}
		return printer.New(s.c, s.out, printer.DefaultOptions()).PrintValue(sfo.ParseKey(args[0]))
	case "set", "add", "edit":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s <key> <value> [--number]", cmd)
		}
		return s.write(cmd, sfo.ParseKey(args[0]), args[1], number)
	case "delete", "rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete <key>")
		}
		return s.delete(sfo.ParseKey(args[0]))
	case "save":
		if len(args) > 1 {
			return fmt.Errorf("usage: save [path]")
		}
		return s.save(args)
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (s *shell) write(cmd string, k sfo.Key, raw string, number bool) error {
	typ := "text"
	if number {
		typ = "number"
	}
	v, err := parseValue(raw, typ)
	if err != nil {
		return err
	}

	switch cmd {
	case "add":
		err = s.c.Add(k, v)
	case "edit":
		err = s.c.Edit(k, v)
	default:
		err = s.c.Set(k, v)
	}
	if err != nil {
		return err
	}
	s.dirty = true
	fmt.Fprintf(s.out, "%s = %s\n", k, printer.FormatValue(v))
	return nil
}

func (s *shell) delete(k sfo.Key) error {
	v, ok := s.c.Get(k)
	if !ok {
		return fmt.Errorf("key %s: %w", k, sfo.ErrKeyNotFound)
	}
	fmt.Fprintf(s.out, "Delete %s = %s?\n", k, printer.FormatValue(v))
	if !s.confirm() {
		fmt.Fprintln(s.out, "Aborted.")
		return nil
	}
	if err := s.c.Delete(k); err != nil {
		return err
	}
	s.dirty = true
	fmt.Fprintf(s.out, "deleted %s\n", k)
	return nil
}

func (s *shell) save(args []string) error {
	target := s.path
	if len(args) == 1 {
		target = args[0]
	}
	if err := s.c.Save(target, &sfo.SaveOptions{Backup: backup && target == s.path}); err != nil {
		return err
	}
	s.path = target
	s.dirty = false
	fmt.Fprintf(s.out, "saved %s (%d bytes)\n", target, s.c.Size())
	return nil
}

func (s *shell) confirm() bool {
	fmt.Fprint(s.out, "Proceed? [y/N]: ")
	response, _ := s.in.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
