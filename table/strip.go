package table

import "regexp"

// Repository identifiers arrive as path-like references of the form
// /<type>/<accession>/, e.g. /files/ENCFF000VXN/.
var (
	refPattern     = regexp.MustCompile(`^/[^/]+/([^/]+)/$`)
	refTypePattern = regexp.MustCompile(`^/([^/]+)/[^/]+/$`)
)

// StripPrefixString reduces a /<type>/<accession>/ reference to its
// accession. Strings that do not match the pattern are returned
// unchanged.
func StripPrefixString(s string) string {
	if m := refPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// StripPrefix applies StripPrefixString to every valid cell. Missing
// cells stay missing.
func StripPrefix(values []Cell) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		if !v.Valid {
			continue
		}
		out[i] = Str(StripPrefixString(v.String))
	}
	return out
}

// SplitRef splits a /<type>/<accession>/ reference into its two
// segments via independent captures. When the pattern does not match,
// both results degrade to the whole input string.
func SplitRef(s string) (refType, accession string) {
	refType, accession = s, s
	if m := refTypePattern.FindStringSubmatch(s); m != nil {
		refType = m[1]
	}
	if m := refPattern.FindStringSubmatch(s); m != nil {
		accession = m[1]
	}
	return refType, accession
}
