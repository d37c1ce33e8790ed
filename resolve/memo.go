package resolve

import "github.com/ericfournier2/encodexplorer/table"

// Memo caches one resolved full table for the lifetime of the process,
// so repeated queries against the merged table pay the resolution cost
// once. It is an explicit value to be passed by reference, with no
// package-level state, and is not safe for concurrent use.
type Memo struct {
	tbl *table.Table
}

// Get returns the cached table, building and retaining it on first
// use. A build error leaves the memo empty.
func (m *Memo) Get(build func() (*table.Table, error)) (*table.Table, error) {
	if m.tbl != nil {
		return m.tbl, nil
	}
	tbl, err := build()
	if err != nil {
		return nil, err
	}
	m.tbl = tbl
	return tbl, nil
}

// Cached reports whether the memo currently holds a table.
func (m *Memo) Cached() bool {
	return m.tbl != nil
}

// Reset clears the cached table; the next Get rebuilds it.
func (m *Memo) Reset() {
	m.tbl = nil
}
