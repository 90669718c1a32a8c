// Package printer renders a Container for humans and scripts.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/sfokit/sfo"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatTable outputs an aligned table, one row per pair.
	FormatTable Format = "table"
)

// ParseFormat accepts "text", "json" and "table".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or table)", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, table).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// ShowFormats includes the on-disk format of each value.
	// Default: true
	ShowFormats bool

	// ShowLayout includes descriptor offsets and slot sizes.
	// Default: false
	ShowLayout bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		ShowFormats: true,
		ShowLayout:  false,
	}
}

// Printer handles formatted output of a container.
type Printer struct {
	opts      Options
	writer    io.Writer
	container *sfo.Container
}

// New creates a new Printer.
//
// Example:
//
//	c, _ := sfo.Open("PARAM.SFO")
//	p := printer.New(c, os.Stdout, printer.DefaultOptions())
//	p.PrintEntries()
func New(c *sfo.Container, w io.Writer, opts Options) *Printer {
	return &Printer{
		container: c,
		writer:    w,
		opts:      opts,
	}
}

// PrintEntries prints every pair in file order.
func (p *Printer) PrintEntries() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printEntriesJSON()
	case FormatTable:
		return p.printEntriesTable()
	default:
		return p.printEntriesText()
	}
}

// PrintValue prints the pair stored under k.
func (p *Printer) PrintValue(k sfo.Key) error {
	e, ok := p.container.Lookup(k)
	if !ok {
		return fmt.Errorf("key %s: %w", k, sfo.ErrKeyNotFound)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.writeJSON(newJSONEntry(e, p.opts))
	case FormatTable:
		return p.printTable([]sfo.Entry{e})
	default:
		return p.printEntryText(e, 0)
	}
}

// PrintDump prints the header, the descriptor table and every pair.
func (p *Printer) PrintDump() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printDumpJSON()
	case FormatTable:
		if err := p.printHeaderText(); err != nil {
			return err
		}
		return p.printTable(p.entries())
	default:
		return p.printDumpText()
	}
}

func (p *Printer) entries() []sfo.Entry {
	out := make([]sfo.Entry, 0, p.container.Len())
	for e := range p.container.All() {
		out = append(out, e)
	}
	return out
}

// FormatValue renders v the way the text printer does: quoted text, numbers
// in hex and decimal.
func FormatValue(v sfo.Value) string {
	if n, ok := v.AsNumber(); ok {
		return fmt.Sprintf("0x%08X (%d)", n, n)
	}
	return fmt.Sprintf("%q", v.String())
}
