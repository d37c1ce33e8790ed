package resolve

import (
	"errors"
	"log"
	"strings"

	"github.com/ericfournier2/encodexplorer/table"
)

// ErrNoFileTable is returned when the source tables carry no file
// table; without it there is nothing to resolve.
var ErrNoFileTable = errors.New("resolve: no file table in source tables")

// Resolve runs the full resolver chain over a copy of the file table
// and returns the denormalized result, sorted by dataset accession.
// Reference tables absent from src degrade to missing values, never to
// errors; the only failure signal short of a missing file table is the
// schema-drift warning logged for expected columns absent from the
// result. A nil logger suppresses the warning.
func Resolve(src Tables, logger *log.Logger) (*table.Table, error) {
	src = normalizeKeys(src)

	raw := src.get(TableFile)
	if raw == nil {
		return nil, ErrNoFileTable
	}

	tbl := raw.Clone()
	for _, st := range steps {
		st(tbl, src)
	}
	tbl.SortBy("accession")

	if missing := MissingExpected(tbl); len(missing) > 0 && logger != nil {
		logger.Printf("resolve: %d expected columns absent after resolution: %s",
			len(missing), strings.Join(missing, ", "))
	}

	return tbl, nil
}

// MissingExpected lists the expected output columns absent from tbl,
// in contract order.
func MissingExpected(tbl *table.Table) []string {
	var missing []string
	for _, name := range ExpectedColumns() {
		if !tbl.HasCol(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Partition splits the resolved table into the named output groups
// plus the catch-all. Each named group takes the first column matching
// each of its names; the catch-all takes every column no named group
// claimed, in table order. Concatenating the partitions in order
// reproduces the wide table.
func Partition(tbl *table.Table) map[string]*table.Table {
	out := make(map[string]*table.Table, len(OutputGroups)+1)

	claimed := make(map[int]bool)
	for _, g := range OutputGroups {
		part := table.New()
		for _, name := range g.Columns {
			for i, col := range tbl.Columns() {
				if col.Name == name && !claimed[i] {
					part.AddCol(col.Name, col.Values)
					claimed[i] = true
					break
				}
			}
		}
		out[g.Name] = part
	}

	rest := table.New()
	for i, col := range tbl.Columns() {
		if !claimed[i] {
			rest.AddCol(col.Name, col.Values)
		}
	}
	out[GroupOther] = rest

	return out
}

// normalizeKeys lowercases source table names so callers can pass the
// repository's type names verbatim.
func normalizeKeys(src Tables) Tables {
	out := make(Tables, len(src))
	for name, tbl := range src {
		out[strings.ToLower(name)] = tbl
	}
	return out
}
