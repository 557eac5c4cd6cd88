package stems

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table maps godan stems to their dictionary forms. Insertion order is kept
// so a saved table is stable.
type Table struct {
	stems []string
	forms map[string]string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{forms: make(map[string]string)}
}

// Add records stem → form. The first form recorded for a stem wins.
func (t *Table) Add(stem, form string) bool {
	if _, ok := t.forms[stem]; ok {
		return false
	}
	t.stems = append(t.stems, stem)
	t.forms[stem] = form
	return true
}

// Lookup returns the dictionary form recorded for stem.
func (t *Table) Lookup(stem string) (string, bool) {
	form, ok := t.forms[stem]
	return form, ok
}

// Len returns the number of stems.
func (t *Table) Len() int { return len(t.stems) }

// Write encodes the table as "stem,form" lines.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, s := range t.stems {
		if err := cw.Write([]string{s, t.forms[s]}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the table to path.
func (t *Table) Save(path string) error {
	return writeFile(path, t.Write)
}

// ReadTable decodes "stem,form" lines. Blank lines are ignored.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	t := NewTable()
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read stem table: %w", err)
		}
		t.Add(strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]))
	}
	return t, nil
}

// LoadTable reads a stem table from path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

// List is an ordered set of ichidan stems.
type List struct {
	stems []string
	set   map[string]struct{}
}

// NewList returns an empty list.
func NewList() *List {
	return &List{set: make(map[string]struct{})}
}

// Add inserts stem if it is not already present.
func (l *List) Add(stem string) bool {
	if _, ok := l.set[stem]; ok {
		return false
	}
	l.stems = append(l.stems, stem)
	l.set[stem] = struct{}{}
	return true
}

// Contains reports whether stem is in the list.
func (l *List) Contains(stem string) bool {
	_, ok := l.set[stem]
	return ok
}

// Len returns the number of stems.
func (l *List) Len() int { return len(l.stems) }

// Write encodes the list one stem per line.
func (l *List) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range l.stems {
		if _, err := bw.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveList writes l to path.
func SaveList(path string, l *List) error {
	return writeFile(path, l.Write)
}

// ReadList decodes one stem per line, skipping blank lines.
func ReadList(r io.Reader) (*List, error) {
	l := NewList()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			l.Add(s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stem list: %w", err)
	}
	return l, nil
}

// LoadList reads an ichidan stem list from path.
func LoadList(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadList(f)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
