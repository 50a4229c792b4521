package tabular

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"admin-srv/pkg/util"
)

// Resolve walks a dotted path through nested row maps. A missing segment or a
// non-map intermediate yields nil.
func Resolve(row map[string]any, path string) any {
	var cur any = row
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[seg]
	}
	return cur
}

// EscapeCSV renders one CSV cell per RFC 4180. Nil becomes an empty cell;
// cells containing commas, quotes, or newlines are quoted with doubled quotes.
func EscapeCSV(value any) string {
	if value == nil {
		return ""
	}

	s := Stringify(value)
	if strings.ContainsAny(s, ",\"\n\r") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}

// Stringify renders a resolved value for a cell. JSON-decoded numbers arrive
// as float64 and must not pick up an exponent or trailing zeros.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ArrayToCSV renders rows under the given column specs. With no rows the
// result is empty, not a bare header.
func ArrayToCSV(rows []map[string]any, columns []Column) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder

	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = EscapeCSV(col.Label)
	}
	b.WriteString(strings.Join(labels, ","))

	for _, row := range rows {
		b.WriteString("\n")
		cells := make([]string, len(columns))
		for i, col := range columns {
			value := Resolve(row, col.Key)
			if col.Format != nil {
				cells[i] = EscapeCSV(col.Format(value, row))
			} else {
				cells[i] = EscapeCSV(value)
			}
		}
		b.WriteString(strings.Join(cells, ","))
	}

	return b.String()
}

// RowMap converts a typed record into the generic row shape the column specs
// resolve against, going through JSON so tags decide the key names.
func RowMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}
	return row, nil
}

// RowMaps converts a slice of typed records into generic rows.
func RowMaps[T any](items []T) ([]map[string]any, error) {
	rows := make([]map[string]any, 0, len(items))
	for i := range items {
		row, err := RowMap(items[i])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Filename builds the download name for a report export, stamped with the
// current date.
func Filename(reportType, ext string) string {
	return fmt.Sprintf("%s_report_%s.%s", reportType, util.DateToStr(time.Now()), ext)
}
