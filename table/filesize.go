package table

import (
	"math"
	"strconv"
)

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// FormatFileSizeString renders a byte count as a unit-suffixed string
// with binary thresholds: below 1024 the integer count plus " b",
// kilobytes rounded to 1 decimal, megabytes rounded to 1 decimal, and
// gigabytes rounded to 2 decimals. Rounding drops trailing zeros, so
// 1024 bytes renders as "1 Kb" and 1048575 as "1024 Kb".
func FormatFileSizeString(bytes float64) string {
	switch {
	case bytes < kb:
		return strconv.FormatInt(int64(bytes), 10) + " b"
	case bytes < mb:
		return formatRounded(bytes/kb, 1) + " Kb"
	case bytes < gb:
		return formatRounded(bytes/mb, 1) + " Mb"
	default:
		return formatRounded(bytes/gb, 2) + " Gb"
	}
}

// FormatFileSize rewrites numeric cells as unit-suffixed size strings.
// Missing cells and cells that do not parse as a number pass through
// unchanged, so re-formatting an already formatted column is a no-op.
func FormatFileSize(values []Cell) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		out[i] = v
		if !v.Valid {
			continue
		}
		bytes, err := strconv.ParseFloat(v.String, 64)
		if err != nil {
			continue
		}
		out[i] = Str(FormatFileSizeString(bytes))
	}
	return out
}

func formatRounded(v float64, decimals int) string {
	shift := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*shift)/shift, 'f', -1, 64)
}
