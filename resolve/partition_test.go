package resolve

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestPartitionTilesWideTable(t *testing.T) {
	tbl, err := Resolve(fixtureTables(), nil)
	if err != nil {
		t.Fatal(err)
	}

	parts := Partition(tbl)
	if len(parts) != len(OutputGroups)+1 {
		t.Fatalf("got %d partitions, want %d", len(parts), len(OutputGroups)+1)
	}

	total := 0
	for name, part := range parts {
		if part.NRows() != tbl.NRows() && part.NCols() > 0 {
			t.Errorf("partition %s has %d rows, want %d", name, part.NRows(), tbl.NRows())
		}
		total += part.NCols()
	}
	if total != tbl.NCols() {
		t.Errorf("partitions hold %d columns, wide table has %d", total, tbl.NCols())
	}
}

func TestPartitionLiteOrder(t *testing.T) {
	tbl, err := Resolve(fixtureTables(), nil)
	if err != nil {
		t.Fatal(err)
	}

	lite := Partition(tbl)["lite"]
	names := lite.Names()
	if len(names) == 0 || names[0] != "file_accession" {
		t.Fatalf("lite starts with %v, want file_accession", names)
	}

	// Lite columns must follow the contract order, skipping absentees.
	want := make(map[string]int)
	for i, name := range OutputGroups[0].Columns {
		want[name] = i
	}
	last := -1
	for _, name := range names {
		pos, ok := want[name]
		if !ok {
			t.Errorf("unexpected column %s in lite partition", name)
			continue
		}
		if pos < last {
			t.Errorf("column %s out of contract order", name)
		}
		last = pos
	}
}

func TestMissingExpectedLogged(t *testing.T) {
	// A nearly empty file table resolves fine but is missing most of
	// the contract columns, which is warned about, not fatal.
	src := Tables{
		TableFile: newTable(
			col("accession", "ENCFF001"),
			col("status", "released"),
		),
	}

	var buf bytes.Buffer
	tbl, err := Resolve(src, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.NRows() != 1 {
		t.Errorf("NRows = %d, want 1", tbl.NRows())
	}

	logged := buf.String()
	if !strings.Contains(logged, "expected columns absent") {
		t.Errorf("no schema-drift warning logged: %q", logged)
	}
	if !strings.Contains(logged, "md5sum") {
		t.Errorf("warning should name the absent md5sum column: %q", logged)
	}

	for _, name := range MissingExpected(tbl) {
		if tbl.HasCol(name) {
			t.Errorf("MissingExpected reported present column %s", name)
		}
	}
}

func TestExpectedColumnsCoverGroups(t *testing.T) {
	expected := ExpectedColumns()
	n := 0
	for _, g := range OutputGroups {
		n += len(g.Columns)
	}
	if len(expected) != n {
		t.Errorf("ExpectedColumns has %d entries, groups name %d", len(expected), n)
	}
}
