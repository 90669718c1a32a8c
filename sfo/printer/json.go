package printer

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/joshuapare/sfokit/sfo"
)

// jsonEntry represents one pair in JSON format.
type jsonEntry struct {
	Key    string  `json:"key"`
	Format string  `json:"format,omitempty"`
	Value  any     `json:"value"`
	Layout *layout `json:"layout,omitempty"`
}

// layout mirrors a descriptor.
type layout struct {
	KeyOffset   uint16 `json:"key_offset"`
	ValueLen    uint32 `json:"value_len"`
	ValueMaxLen uint32 `json:"value_max_len"`
	ValueOffset uint32 `json:"value_offset"`
}

// jsonHeader represents the header in JSON format.
type jsonHeader struct {
	Version        uint32 `json:"version"`
	KeyTableStart  uint32 `json:"key_table_start"`
	DataTableStart uint32 `json:"data_table_start"`
	EntryCount     uint32 `json:"entry_count"`
	Padding        int    `json:"padding"`
}

// jsonDump is the full container.
type jsonDump struct {
	Header  jsonHeader  `json:"header"`
	Entries []jsonEntry `json:"entries"`
}

func newJSONEntry(e sfo.Entry, opts Options) jsonEntry {
	out := jsonEntry{Key: e.Key.String()}
	if n, ok := e.Value.AsNumber(); ok {
		out.Value = n
	} else {
		out.Value = e.Value.String()
	}
	if opts.ShowFormats {
		out.Format = e.Descriptor.Format.Name()
	}
	if opts.ShowLayout {
		d := e.Descriptor
		out.Layout = &layout{
			KeyOffset:   d.KeyOffset,
			ValueLen:    d.ValueLen,
			ValueMaxLen: d.ValueMaxLen,
			ValueOffset: d.ValueOffset,
		}
	}
	return out
}

func (p *Printer) jsonEntries() []jsonEntry {
	out := make([]jsonEntry, 0, p.container.Len())
	for e := range p.container.All() {
		out = append(out, newJSONEntry(e, p.opts))
	}
	return out
}

func (p *Printer) printEntriesJSON() error {
	return p.writeJSON(p.jsonEntries())
}

func (p *Printer) printDumpJSON() error {
	h := p.container.Header()
	opts := p.opts
	opts.ShowLayout = true
	dump := jsonDump{
		Header: jsonHeader{
			Version:        h.Version,
			KeyTableStart:  h.KeyTableStart,
			DataTableStart: h.DataTableStart,
			EntryCount:     h.EntryCount,
			Padding:        p.container.Padding(),
		},
		Entries: make([]jsonEntry, 0, p.container.Len()),
	}
	for e := range p.container.All() {
		dump.Entries = append(dump.Entries, newJSONEntry(e, opts))
	}
	return p.writeJSON(dump)
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
