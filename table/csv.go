package table

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// FromMaps builds a table from one map per row, with header supplying
// the column order. Keys absent from a row and empty strings become
// missing cells.
func FromMaps(rows []map[string]string, header []string) *Table {
	t := New()
	for _, name := range header {
		vals := make([]Cell, len(rows))
		for i, row := range rows {
			if s, ok := row[name]; ok && s != "" {
				vals[i] = Str(s)
			}
		}
		t.AddCol(name, vals)
	}
	return t
}

// ReadCSV reads a CSV document into a table. Empty fields become
// missing cells; the header row supplies column names and order.
func ReadCSV(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	header, err := csv.NewReader(bytes.NewReader(raw)).Read()
	if err == io.EOF {
		return New(), nil
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	rows, err := gocsv.CSVToMaps(bytes.NewReader(raw))
	if err != nil {
		return nil, pfx.Err(err)
	}

	return FromMaps(rows, header), nil
}

// WriteCSV writes the table as CSV. Missing cells become empty fields,
// which ReadCSV maps back to missing.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Names()); err != nil {
		return pfx.Err(err)
	}

	record := make([]string, t.NCols())
	for row := 0; row < t.NRows(); row++ {
		for ci, col := range t.Columns() {
			record[ci] = ""
			if v := col.Values[row]; v.Valid {
				record[ci] = v.String
			}
		}
		if err := cw.Write(record); err != nil {
			return pfx.Err(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return pfx.Err(err)
	}
	return nil
}
