package extract

import (
	"strconv"
	"strings"

	"github.com/ericfournier2/encodexplorer/table"
)

// flattenValue reduces one JSON value to a cell string. Strings pass
// through, numbers and booleans are formatted, arrays join their
// flattened elements with ";", and embedded objects reduce to their
// @id reference. The second return reports whether the value could be
// flattened at all; nulls and @id-less objects cannot.
func flattenValue(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, elem := range val {
			if s, ok := flattenValue(elem); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ";"), true
	case map[string]interface{}:
		if id, ok := val["@id"].(string); ok {
			return id, true
		}
		return "", false
	default:
		return "", false
	}
}

// flattenObjects turns a list of decoded JSON objects into a table.
// Column order is first-seen order across all rows. The @id key maps
// to the id column; @type and other @-keys are dropped. Keys absent
// from a row become missing cells.
func flattenObjects(objects []map[string]interface{}) *table.Table {
	var order []string
	seen := make(map[string]bool)
	rows := make([]map[string]table.Cell, len(objects))

	for i, obj := range objects {
		row := make(map[string]table.Cell, len(obj))
		for key, raw := range obj {
			name := key
			if strings.HasPrefix(key, "@") {
				if key != "@id" {
					continue
				}
				name = "id"
			}
			s, ok := flattenValue(raw)
			if !ok {
				continue
			}
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
			row[name] = table.Str(s)
		}
		rows[i] = row
	}

	tbl := table.New()
	for _, name := range order {
		vals := make([]table.Cell, len(rows))
		for i, row := range rows {
			vals[i] = row[name]
		}
		tbl.AddCol(name, vals)
	}
	return tbl
}
