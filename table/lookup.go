package table

// Lookup resolves one column of a secondary table through a foreign
// key. For each key it returns the secCol value of the first secondary
// row whose secKey column equals the key, or a missing cell when the
// key is missing, the secondary table or either column is absent, or no
// row matches. First match wins; later duplicate keys in the secondary
// table are ignored.
func Lookup(keys []Cell, sec *Table, secKey, secCol string) []Cell {
	out := make([]Cell, len(keys))

	var index map[string]int
	var vals []Cell
	if sec != nil {
		vals = sec.Col(secCol)
		if keyCol := sec.Col(secKey); keyCol != nil && vals != nil {
			index = make(map[string]int, len(keyCol))
			for i, k := range keyCol {
				if !k.Valid {
					continue
				}
				if _, seen := index[k.String]; !seen {
					index[k.String] = i
				}
			}
		}
	}

	for i, k := range keys {
		if !k.Valid || index == nil {
			continue
		}
		if row, ok := index[k.String]; ok {
			out[i] = vals[row]
		}
	}
	return out
}

// LookupFallback is Lookup, except that rows with no match take the
// value of the fallback column at that row instead of going missing.
func LookupFallback(keys []Cell, sec *Table, secKey, secCol string, fallback []Cell) []Cell {
	out := Lookup(keys, sec, secKey, secCol)
	for i := range out {
		if !out[i].Valid && i < len(fallback) {
			out[i] = fallback[i]
		}
	}
	return out
}

// RenamePair maps one column pulled from a secondary table (From) to
// the name it takes in the destination table (As).
type RenamePair struct {
	As   string
	From string
}

// Pull is shorthand for a RenamePair that keeps the source name.
func Pull(name string) RenamePair {
	return RenamePair{As: name, From: name}
}

// JoinColumns resolves each requested column from the secondary table
// through the shared key vector and appends the results to dst in pair
// order. Columns are appended unconditionally; a name already present
// in dst yields a duplicate, which later explicit selection resolves.
func JoinColumns(dst *Table, keys []Cell, sec *Table, secKey string, pairs []RenamePair) {
	for _, p := range pairs {
		dst.AddCol(p.As, Lookup(keys, sec, secKey, p.From))
	}
}
