package printer

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/joshuapare/sfokit/sfo"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (p *Printer) printEntriesTable() error {
	return p.printTable(p.entries())
}

func (p *Printer) printTable(entries []sfo.Entry) error {
	headers := []string{"KEY"}
	if p.opts.ShowFormats {
		headers = append(headers, "FORMAT")
	}
	headers = append(headers, "VALUE")
	if p.opts.ShowLayout {
		headers = append(headers, "LEN", "MAX", "OFFSET")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range entries {
		row := []string{e.Key.String()}
		if p.opts.ShowFormats {
			row = append(row, e.Descriptor.Format.Name())
		}
		row = append(row, e.Value.String())
		if p.opts.ShowLayout {
			d := e.Descriptor
			row = append(row,
				strconv.FormatUint(uint64(d.ValueLen), 10),
				strconv.FormatUint(uint64(d.ValueMaxLen), 10),
				fmt.Sprintf("0x%04X", d.ValueOffset),
			)
		}
		t.Row(row...)
	}

	_, err := fmt.Fprintln(p.writer, t.Render())
	return err
}
