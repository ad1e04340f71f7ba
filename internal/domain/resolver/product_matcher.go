// Package resolver maps free-text labels found in import sources onto
// existing records. Every lookup is case-insensitive.
package resolver

import (
	"cmp"
	"slices"
	"strings"

	"megaskyshop/internal/domain/entity"
)

// MatchKind tells how a product name was resolved.
type MatchKind int

const (
	// MatchNone means the name did not resolve to any product.
	MatchNone MatchKind = iota
	// MatchExact means the name equals a product name.
	MatchExact
	// MatchSubstring means the name is contained in a product name.
	MatchSubstring
)

// String returns a label for logging.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchSubstring:
		return "substring"
	default:
		return "none"
	}
}

// ProductMatcher resolves product names against a read-only snapshot of the
// catalog. It is safe for concurrent use once built.
type ProductMatcher struct {
	refs  []entity.ProductRef
	lower []string
}

// NewProductMatcher builds a matcher. Refs are ordered by ID so that ties
// resolve to the earliest product.
func NewProductMatcher(refs []entity.ProductRef) *ProductMatcher {
	sorted := slices.Clone(refs)
	slices.SortStableFunc(sorted, func(a, b entity.ProductRef) int {
		return cmp.Compare(a.ID, b.ID)
	})

	lower := make([]string, len(sorted))
	for i, ref := range sorted {
		lower[i] = strings.ToLower(strings.TrimSpace(ref.Name))
	}

	return &ProductMatcher{refs: sorted, lower: lower}
}

// Len returns the snapshot size.
func (m *ProductMatcher) Len() int {
	return len(m.refs)
}

// Match resolves name in two phases: exact, then substring. An empty name
// never matches.
func (m *ProductMatcher) Match(name string) (uint, MatchKind) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return 0, MatchNone
	}

	for i, candidate := range m.lower {
		if candidate == needle {
			return m.refs[i].ID, MatchExact
		}
	}

	for i, candidate := range m.lower {
		if strings.Contains(candidate, needle) {
			return m.refs[i].ID, MatchSubstring
		}
	}

	return 0, MatchNone
}
