package table

import "testing"

func cells(values ...string) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		if v != "" {
			out[i] = Str(v)
		}
	}
	return out
}

func cellsEqual(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Valid != b[i].Valid || a[i].String != b[i].String {
			return false
		}
	}
	return true
}

func TestSetColReplacesFirstMatchOnly(t *testing.T) {
	tbl := New()
	tbl.AddCol("x", cells("a", "b"))
	tbl.AddCol("x", cells("c", "d"))

	tbl.SetCol("x", cells("e", "f"))

	if got := tbl.Col("x"); !cellsEqual(got, cells("e", "f")) {
		t.Errorf("first x column = %v", got)
	}
	if !cellsEqual(tbl.Columns()[1].Values, cells("c", "d")) {
		t.Error("second x column should be untouched")
	}
	if tbl.NCols() != 2 {
		t.Errorf("NCols = %d, want 2", tbl.NCols())
	}
}

func TestSetColAppendsWhenAbsent(t *testing.T) {
	tbl := New()
	tbl.AddCol("x", cells("a"))

	tbl.SetCol("y", cells("b"))

	if !tbl.HasCol("y") {
		t.Error("y column not appended")
	}
}

func TestColOrMissingColumn(t *testing.T) {
	tbl := New()
	tbl.AddCol("x", cells("a", "b", "c"))

	got := tbl.ColOr("nope")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, v := range got {
		if v.Valid {
			t.Errorf("row %d should be missing", i)
		}
	}
}

func TestRename(t *testing.T) {
	tbl := New()
	tbl.AddCol("status", cells("released"))

	if !tbl.Rename("status", "file_status") {
		t.Error("Rename reported no match")
	}
	if tbl.HasCol("status") || !tbl.HasCol("file_status") {
		t.Errorf("names after rename: %v", tbl.Names())
	}
	if tbl.Rename("status", "file_status") {
		t.Error("second rename should report no match")
	}
}

func TestSortByStableMissingLast(t *testing.T) {
	tbl := New()
	tbl.AddCol("accession", cells("B", "", "A", "B"))
	tbl.AddCol("tag", cells("b1", "miss", "a", "b2"))

	tbl.SortBy("accession")

	if got := tbl.Col("tag"); !cellsEqual(got, cells("a", "b1", "b2", "miss")) {
		t.Errorf("tag order after sort = %v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	tbl := New()
	tbl.AddCol("x", cells("a"))

	cp := tbl.Clone()
	cp.SetCol("x", cells("z"))

	if got := tbl.Col("x"); !cellsEqual(got, cells("a")) {
		t.Errorf("original mutated through clone: %v", got)
	}
}

func TestSelectSkipsAbsentAndOrders(t *testing.T) {
	tbl := New()
	tbl.AddCol("a", cells("1"))
	tbl.AddCol("b", cells("2"))

	sel := tbl.Select("b", "nope", "a")
	want := []string{"b", "a"}
	got := sel.Names()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Select names = %v, want %v", got, want)
	}
}
