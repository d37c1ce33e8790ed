// Package table implements the rectangular in-memory tables that the
// ENCODE metadata pipeline is built on, together with the join and
// lookup primitives used to denormalize them.
package table

import (
	"sort"

	"gopkg.in/guregu/null.v3"
)

// Cell is a single table value. An invalid Cell is a missing value.
type Cell = null.String

// Str returns a valid Cell holding s.
func Str(s string) Cell {
	return null.StringFrom(s)
}

// Missing returns the missing-value marker.
func Missing() Cell {
	return null.String{}
}

// Column is a named, ordered sequence of cells.
type Column struct {
	Name   string `json:"name"`
	Values []Cell `json:"values"`
}

// Table is an ordered collection of equal-length columns. Duplicate
// column names are permitted; every name-addressed operation acts on
// the first column carrying that name.
type Table struct {
	cols []Column
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// NRows reports the number of rows (the length of every column).
func (t *Table) NRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Values)
}

// NCols reports the number of columns.
func (t *Table) NCols() int {
	return len(t.cols)
}

// Names returns the column names in table order, duplicates included.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name
	}
	return out
}

// Columns returns the underlying columns in table order. The returned
// slice shares storage with the table.
func (t *Table) Columns() []Column {
	return t.cols
}

// HasCol reports whether a column with the given name exists.
func (t *Table) HasCol(name string) bool {
	return t.colIndex(name) >= 0
}

// Col returns the values of the first column named name, or nil when no
// such column exists.
func (t *Table) Col(name string) []Cell {
	if i := t.colIndex(name); i >= 0 {
		return t.cols[i].Values
	}
	return nil
}

// ColOr returns the values of the first column named name, or a column
// of missing values of the table's row count when no such column
// exists. Lookups against columns the upstream schema no longer carries
// degrade to missing values rather than failing.
func (t *Table) ColOr(name string) []Cell {
	if v := t.Col(name); v != nil {
		return v
	}
	return make([]Cell, t.NRows())
}

// AddCol appends a column. The length of values must equal the table's
// row count unless the table is empty.
func (t *Table) AddCol(name string, values []Cell) {
	if len(t.cols) > 0 && len(values) != t.NRows() {
		panic("table: column " + name + " length does not match table row count")
	}
	t.cols = append(t.cols, Column{Name: name, Values: values})
}

// SetCol replaces the values of the first column named name, or appends
// a new column when none exists.
func (t *Table) SetCol(name string, values []Cell) {
	if len(t.cols) > 0 && len(values) != t.NRows() {
		panic("table: column " + name + " length does not match table row count")
	}
	if i := t.colIndex(name); i >= 0 {
		t.cols[i].Values = values
		return
	}
	t.cols = append(t.cols, Column{Name: name, Values: values})
}

// Rename renames the first column named old to new, reporting whether a
// column was renamed.
func (t *Table) Rename(old, new string) bool {
	if i := t.colIndex(old); i >= 0 {
		t.cols[i].Name = new
		return true
	}
	return false
}

// Select returns a new table holding the first-matching column for each
// requested name, in the requested order. Names with no matching column
// are skipped. Values are shared with the receiver.
func (t *Table) Select(names ...string) *Table {
	out := New()
	for _, name := range names {
		if i := t.colIndex(name); i >= 0 {
			out.cols = append(out.cols, t.cols[i])
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{cols: make([]Column, len(t.cols))}
	for i, c := range t.cols {
		vals := make([]Cell, len(c.Values))
		copy(vals, c.Values)
		out.cols[i] = Column{Name: c.Name, Values: vals}
	}
	return out
}

// SortBy reorders all rows by the named column, ascending by string
// value with missing cells last. The sort is stable; ties keep their
// input order. A table without the column is left untouched.
func (t *Table) SortBy(name string) {
	key := t.Col(name)
	if key == nil {
		return
	}

	perm := make([]int, len(key))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ka, kb := key[perm[a]], key[perm[b]]
		switch {
		case !ka.Valid && !kb.Valid:
			return false
		case !ka.Valid:
			return false
		case !kb.Valid:
			return true
		}
		return ka.String < kb.String
	})

	for ci := range t.cols {
		old := t.cols[ci].Values
		vals := make([]Cell, len(old))
		for i, p := range perm {
			vals[i] = old[p]
		}
		t.cols[ci].Values = vals
	}
}

func (t *Table) colIndex(name string) int {
	for i, c := range t.cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}
