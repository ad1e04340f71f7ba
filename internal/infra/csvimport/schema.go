package csvimport

import (
	"strings"

	domainerrors "megaskyshop/internal/domain/errors"
)

// Column is a named field of a dataset. Aliases are alternative header
// names, tried in order after Name.
type Column struct {
	Name     string
	Aliases  []string
	Required bool
}

// Schema is the expected header layout of a dataset.
type Schema struct {
	Dataset string
	Columns []Column
}

// Binding maps header names onto cell positions for one source.
type Binding struct {
	header []string
	index  map[string]int
}

// normalizeKey folds case and drops separators so that camelCase and
// snake_case headers compare equal.
func normalizeKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Bind validates header against the schema and builds the lookup table.
// Required columns missing from the header produce a *SchemaError.
func (s *Schema) Bind(header []string) (*Binding, error) {
	cleaned := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		cleaned[i] = strings.TrimSpace(name)
		key := normalizeKey(cleaned[i])
		if _, dup := index[key]; !dup && key != "" {
			index[key] = i
		}
	}

	var missing []string
	for _, col := range s.Columns {
		pos, found := -1, false
		for _, candidate := range append([]string{col.Name}, col.Aliases...) {
			if p, ok := index[normalizeKey(candidate)]; ok {
				pos, found = p, true

				break
			}
		}
		if found {
			index[normalizeKey(col.Name)] = pos
		} else if col.Required {
			missing = append(missing, col.Name)
		}
	}

	if len(missing) > 0 {
		return nil, domainerrors.NewSchemaError(s.Dataset, missing)
	}

	return &Binding{header: cleaned, index: index}, nil
}

// Width returns the number of header columns.
func (b *Binding) Width() int {
	return len(b.header)
}

// Header returns the cleaned header names.
func (b *Binding) Header() []string {
	return b.header
}

// Has reports whether the source carries column name.
func (b *Binding) Has(name string) bool {
	_, ok := b.index[normalizeKey(name)]

	return ok
}

// ProductSchema describes product exports.
func ProductSchema() *Schema {
	return &Schema{
		Dataset: "products",
		Columns: []Column{
			{Name: "name", Required: true},
			{Name: "price", Required: true},
			{Name: "description"},
			{Name: "category"},
			{Name: "stock", Aliases: []string{"quantity"}},
			{Name: "avgRating", Aliases: []string{"rating"}},
			{Name: "metaTitle"},
			{Name: "metaDescription"},
			{Name: "mainImage", Aliases: []string{"image", "images[0]"}},
			{Name: "createdAt"},
			{Name: "updatedAt"},
		},
	}
}

// OrderSchema describes order exports.
func OrderSchema() *Schema {
	return &Schema{
		Dataset: "orders",
		Columns: []Column{
			{Name: "name", Aliases: []string{"customerName"}, Required: true},
			{Name: "email"},
			{Name: "shippingAddress", Aliases: []string{"address"}},
			{Name: "mobile", Aliases: []string{"phone"}},
			{Name: "total"},
			{Name: "status"},
			{Name: "createdAt"},
			{Name: "updatedAt"},
		},
	}
}

// CategorySchema describes category seed files.
func CategorySchema() *Schema {
	return &Schema{
		Dataset: "categories",
		Columns: []Column{
			{Name: "name", Required: true},
			{Name: "slug"},
			{Name: "description"},
			{Name: "parent", Aliases: []string{"parentName", "parentSlug"}},
			{Name: "isActive", Aliases: []string{"active"}},
			{Name: "sortOrder"},
		},
	}
}

// SectionSchema describes homepage section seed files.
func SectionSchema() *Schema {
	return &Schema{
		Dataset: "sections",
		Columns: []Column{
			{Name: "sectionName", Required: true},
			{Name: "title"},
			{Name: "subtitle"},
			{Name: "content"},
			{Name: "buttonText"},
			{Name: "buttonUrl"},
			{Name: "additionalData"},
			{Name: "isActive", Aliases: []string{"active"}},
			{Name: "sortOrder"},
		},
	}
}

// Absent lists the schema columns the source does not carry. Their fields
// decode to defaults.
func (b *Binding) Absent(s *Schema) []string {
	var absent []string
	for _, col := range s.Columns {
		if !b.Has(col.Name) {
			absent = append(absent, col.Name)
		}
	}

	return absent
}
