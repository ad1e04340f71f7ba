package csvimport

import (
	"strconv"
	"strings"
)

// Field is a raw header name with its cell value.
type Field struct {
	Name  string
	Value string
}

// Record is one data row addressed by column name.
type Record struct {
	Line    int
	Cells   []string
	binding *Binding
}

// Get returns the trimmed cell for name, or "" when the source has no such
// column.
func (r Record) Get(name string) string {
	if r.binding == nil {
		return ""
	}
	pos, ok := r.binding.index[normalizeKey(name)]
	if !ok || pos >= len(r.Cells) {
		return ""
	}

	return strings.TrimSpace(r.Cells[pos])
}

// WithPrefix returns the fields whose header starts with prefix
// (case-insensitive), in header order. Field names have the prefix removed.
func (r Record) WithPrefix(prefix string) []Field {
	if r.binding == nil {
		return nil
	}

	lowerPrefix := strings.ToLower(prefix)
	var fields []Field
	for i, name := range r.binding.header {
		if i >= len(r.Cells) || !strings.HasPrefix(strings.ToLower(name), lowerPrefix) {
			continue
		}
		fields = append(fields, Field{
			Name:  name[len(prefix):],
			Value: strings.TrimSpace(r.Cells[i]),
		})
	}

	return fields
}

// Map returns the row as header name → raw cell, for logging.
func (r Record) Map() map[string]string {
	out := make(map[string]string, len(r.Cells))
	for i, cell := range r.Cells {
		if r.binding != nil && i < len(r.binding.header) {
			out[r.binding.header[i]] = cell

			continue
		}
		out["column_"+strconv.Itoa(i+1)] = cell
	}

	return out
}
