// Package sfo reads, edits, and writes PARAM.SFO ("system file object")
// containers.
//
// # File Structure
//
// A container consists of:
//
//	[magic 00 50 53 46] [header] [descriptor 0 .. N-1] [key table] [pad] [value table]
//
// The header holds the absolute offsets of the key and value tables and the
// entry count. Each 16-byte descriptor locates one key (relative to the key
// table) and one value slot (relative to the value table) and records the
// value format. Keys are NUL-terminated and packed; the key table is padded
// with zeros so the value table starts on a 4-byte boundary. Value slots are
// packed back to back.
//
// # Opening a Container
//
//	c, err := sfo.Open("PARAM.SFO")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse and ParseBytes accept an io.Reader or a byte slice instead.
//
// # Reading
//
//	for e := range c.All() {
//	    fmt.Println(e.Key, e.Value, e.Descriptor.Format)
//	}
//
//	title, ok := c.Get(sfo.KeyTitle.Key())
//
// Keys from the built-in catalogue resolve to the same Key whatever string
// they were parsed from; any other text becomes an unknown key that keeps its
// literal spelling (see ParseKey).
//
// # Editing
//
//	err := c.Add(sfo.ParseKey("TITLE_00"), sfo.Text("My Game"))
//	err = c.Edit(sfo.KeyAppVer.Key(), sfo.Text("01.01"))
//	err = c.Delete(sfo.KeyAccountID.Key())
//
// Every mutation updates the descriptor table, the pairs and the header
// together. Edited values get a slot of exactly their encoded size, so the
// slack a file reserved for in-place updates is not preserved. A mutation
// that fails (ErrKeyNotFound, ErrKeyExists, ErrInvalidValue,
// ErrKeyTableFull) leaves the container unchanged.
//
// # Writing
//
//	err = c.Save("PARAM.SFO", &sfo.SaveOptions{Backup: true})
//
// Export and WriteTo write to any io.Writer. Parsing a valid file and
// exporting it without mutation reproduces the input bytes.
//
// # Errors
//
// All errors wrap the sentinels from pkg/types; use errors.Is or
// types.KindOf to branch on them.
package sfo
