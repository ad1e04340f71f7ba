package collapse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type section struct {
	id  uint
	key string
}

func sectionKey(s section) string { return s.key }
func sectionID(s section) uint    { return s.id }

func TestPlan_KeepsLowestIdentifier(t *testing.T) {
	records := []section{
		{id: 5, key: "hero"},
		{id: 1, key: "hero"},
		{id: 2, key: "benefits"},
	}

	result := Plan(records, sectionKey, sectionID)

	require.Len(t, result.Groups, 1)
	assert.Equal(t, "hero", result.Groups[0].Key)
	assert.Equal(t, uint(1), result.Groups[0].Keep)
	assert.Equal(t, []uint{5}, result.DeleteIDs())
	assert.Equal(t, map[string]uint{"hero": 1}, result.Kept())
}

func TestPlan_IsIdempotent(t *testing.T) {
	records := []section{
		{id: 1, key: "hero"},
		{id: 5, key: "hero"},
		{id: 7, key: "hero"},
		{id: 2, key: "benefits"},
		{id: 3, key: "benefits"},
	}

	first := Plan(records, sectionKey, sectionID)
	assert.Equal(t, []uint{3, 5, 7}, first.DeleteIDs())

	deleted := make(map[uint]bool)
	for _, id := range first.DeleteIDs() {
		deleted[id] = true
	}
	var remaining []section
	for _, r := range records {
		if !deleted[r.id] {
			remaining = append(remaining, r)
		}
	}

	second := Plan(remaining, sectionKey, sectionID)
	assert.True(t, second.Empty())
	assert.Empty(t, second.DeleteIDs())
}

func TestPlan_NoRecords(t *testing.T) {
	result := Plan([]section(nil), sectionKey, sectionID)

	assert.True(t, result.Empty())
}

func TestPlan_GroupsOrderedByKey(t *testing.T) {
	records := []section{
		{id: 9, key: "zeta"},
		{id: 4, key: "zeta"},
		{id: 8, key: "alpha"},
		{id: 6, key: "alpha"},
	}

	result := Plan(records, sectionKey, sectionID)

	require.Len(t, result.Groups, 2)
	assert.Equal(t, "alpha", result.Groups[0].Key)
	assert.Equal(t, uint(6), result.Groups[0].Keep)
	assert.Equal(t, "zeta", result.Groups[1].Key)
	assert.Equal(t, uint(4), result.Groups[1].Keep)
}
