package resolver

import (
	"cmp"
	"slices"
	"strings"
)

// CategoryAlias maps a label onto a category id.
type CategoryAlias struct {
	Label      string
	CategoryID uint
}

// CategoryResolver maps free-text category labels onto category ids. Labels
// that match nothing fall back to the default id, so a product is never left
// uncategorized.
type CategoryResolver struct {
	byKey     map[string]uint
	keys      []string // substring scan order: longest first, then lexicographic
	defaultID uint
}

// NewCategoryResolver builds a resolver. Earlier aliases win over later ones
// that share the same case-folded label.
func NewCategoryResolver(defaultID uint, aliases ...CategoryAlias) *CategoryResolver {
	byKey := make(map[string]uint, len(aliases))
	for _, alias := range aliases {
		key := strings.ToLower(strings.TrimSpace(alias.Label))
		if key == "" || alias.CategoryID == 0 {
			continue
		}
		if _, exists := byKey[key]; !exists {
			byKey[key] = alias.CategoryID
		}
	}

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})

	return &CategoryResolver{byKey: byKey, keys: keys, defaultID: defaultID}
}

// DefaultID returns the fallback category id.
func (r *CategoryResolver) DefaultID() uint {
	return r.defaultID
}

// Resolve returns the category id for label and whether it came from the
// mapping rather than the fallback.
func (r *CategoryResolver) Resolve(label string) (uint, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return r.defaultID, false
	}

	if id, ok := r.byKey[needle]; ok {
		return id, true
	}

	for _, key := range r.keys {
		if strings.Contains(needle, key) {
			return r.byKey[key], true
		}
	}

	return r.defaultID, false
}
