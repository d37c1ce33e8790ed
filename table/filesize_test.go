package table

import "testing"

func TestFormatFileSizeString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 b"},
		{1023, "1023 b"},
		{1024, "1 Kb"},
		{1536, "1.5 Kb"},
		{1048575, "1024 Kb"},
		{1048576, "1 Mb"},
		{5033165, "4.8 Mb"},
		{1073741823, "1024 Mb"},
		{1073741824, "1 Gb"},
		{1610612736, "1.5 Gb"},
	}
	for _, c := range cases {
		if got := FormatFileSizeString(c.in); got != c.want {
			t.Errorf("FormatFileSizeString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatFileSizePassthrough(t *testing.T) {
	in := []Cell{Str("1024"), Missing(), Str("1.5 Kb")}
	got := FormatFileSize(in)

	if !got[0].Valid || got[0].String != "1 Kb" {
		t.Errorf("numeric cell = %v", got[0])
	}
	if got[1].Valid {
		t.Error("missing cell should stay missing, not become a suffixed string")
	}
	if got[2].String != "1.5 Kb" {
		t.Errorf("already formatted cell changed to %v", got[2])
	}
}
