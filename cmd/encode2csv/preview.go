package main

import (
	prettytable "github.com/jedib0t/go-pretty/v6/table"

	"github.com/ericfournier2/encodexplorer/table"
)

// previewColumns keeps the terminal rendering narrow enough to read.
var previewColumns = []string{
	"file_accession", "file_format", "file_size", "accession", "assay",
	"organism", "target", "biosample_name", "treatment", "status",
}

// renderPreview renders the first n rows of the resolved table's most
// informative columns.
func renderPreview(tbl *table.Table, n int) string {
	view := tbl.Select(previewColumns...)
	if n > view.NRows() {
		n = view.NRows()
	}

	tw := prettytable.NewWriter()
	tw.SetStyle(prettytable.StyleRounded)

	header := make(prettytable.Row, view.NCols())
	for i, name := range view.Names() {
		header[i] = name
	}
	tw.AppendHeader(header)

	for row := 0; row < n; row++ {
		r := make(prettytable.Row, view.NCols())
		for ci, col := range view.Columns() {
			if v := col.Values[row]; v.Valid {
				r[ci] = v.String
			} else {
				r[ci] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
