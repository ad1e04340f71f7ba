package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const defaultCategory uint = 1

func newResolver() *CategoryResolver {
	return NewCategoryResolver(defaultCategory,
		CategoryAlias{Label: "Smartphone", CategoryID: 7},
		CategoryAlias{Label: "Phone", CategoryID: 8},
		CategoryAlias{Label: "Condom", CategoryID: 3},
		CategoryAlias{Label: "Smart Watch", CategoryID: 9},
	)
}

func TestCategoryResolver_Exact(t *testing.T) {
	id, mapped := newResolver().Resolve("Smartphone")

	assert.Equal(t, uint(7), id)
	assert.True(t, mapped)
}

func TestCategoryResolver_ExactIsCaseInsensitive(t *testing.T) {
	id, mapped := newResolver().Resolve("  SMARTPHONE ")

	assert.Equal(t, uint(7), id)
	assert.True(t, mapped)
}

func TestCategoryResolver_SubstringPrefersLongestKey(t *testing.T) {
	id, mapped := newResolver().Resolve("Android Smartphones")

	assert.Equal(t, uint(7), id)
	assert.True(t, mapped)
}

func TestCategoryResolver_Substring(t *testing.T) {
	id, mapped := newResolver().Resolve("Dotted condoms pack")

	assert.Equal(t, uint(3), id)
	assert.True(t, mapped)
}

func TestCategoryResolver_FallsBackToDefault(t *testing.T) {
	for _, label := range []string{"Gadgets", "", "   "} {
		t.Run(label, func(t *testing.T) {
			id, mapped := newResolver().Resolve(label)

			assert.Equal(t, defaultCategory, id)
			assert.NotZero(t, id)
			assert.False(t, mapped)
		})
	}
}

func TestCategoryResolver_FirstAliasWins(t *testing.T) {
	resolver := NewCategoryResolver(defaultCategory,
		CategoryAlias{Label: "Phone", CategoryID: 8},
		CategoryAlias{Label: "phone", CategoryID: 99},
		CategoryAlias{Label: "ignored", CategoryID: 0},
	)

	id, _ := resolver.Resolve("PHONE")
	assert.Equal(t, uint(8), id)

	id, mapped := resolver.Resolve("ignored")
	assert.Equal(t, defaultCategory, id)
	assert.False(t, mapped)
}
