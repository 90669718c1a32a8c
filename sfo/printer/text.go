package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/sfokit/sfo"
)

func (p *Printer) printEntriesText() error {
	for e := range p.container.All() {
		if err := p.printEntryText(e, 0); err != nil {
			return err
		}
	}
	return nil
}

// printEntryText prints one pair as: KEY [format] = value
func (p *Printer) printEntryText(e sfo.Entry, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(e.Key.String())
	if p.opts.ShowFormats {
		fmt.Fprintf(&sb, " [%s]", e.Descriptor.Format.Name())
	}
	sb.WriteString(" = ")
	sb.WriteString(FormatValue(e.Value))
	if p.opts.ShowLayout {
		d := e.Descriptor
		fmt.Fprintf(&sb, " (len %d/%d @ 0x%04X)", d.ValueLen, d.ValueMaxLen, d.ValueOffset)
	}
	sb.WriteByte('\n')

	_, err := fmt.Fprint(p.writer, sb.String())
	return err
}

func (p *Printer) printHeaderText() error {
	_, err := fmt.Fprintf(p.writer, "Header:\n%s\n\n", indentLines(p.container.Header().String(), p.opts.IndentSize))
	return err
}

func (p *Printer) printDumpText() error {
	if err := p.printHeaderText(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(p.writer, "Index table:"); err != nil {
		return err
	}
	i := 0
	for e := range p.container.All() {
		if _, err := fmt.Fprintf(p.writer, "%sKey %d (%s):\n%s\n",
			strings.Repeat(" ", p.opts.IndentSize), i, e.Key,
			indentLines(e.Descriptor.String(), 2*p.opts.IndentSize)); err != nil {
			return err
		}
		i++
	}

	if _, err := fmt.Fprintf(p.writer, "\nPadding: %d\n\nEntries:\n", p.container.Padding()); err != nil {
		return err
	}
	for e := range p.container.All() {
		if err := p.printEntryText(e, 1); err != nil {
			return err
		}
	}
	return nil
}

func indentLines(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
