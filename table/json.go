package table

import (
	"encoding/json"
	"fmt"
)

type tableJSON struct {
	Columns []Column `json:"columns"`
}

// MarshalJSON encodes the table as an ordered column list. Missing
// cells encode as JSON null.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableJSON{Columns: t.cols})
}

// UnmarshalJSON replaces the table's contents with the decoded
// columns. Ragged payloads are rejected; every column must have the
// same length or later row indexing would run out of range.
func (t *Table) UnmarshalJSON(b []byte) error {
	var wire tableJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	for _, c := range wire.Columns {
		if len(c.Values) != len(wire.Columns[0].Values) {
			return fmt.Errorf("table: column %s has %d values, first column has %d",
				c.Name, len(c.Values), len(wire.Columns[0].Values))
		}
	}
	t.cols = wire.Columns
	return nil
}
