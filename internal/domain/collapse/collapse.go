// Package collapse plans the removal of records that share a key which is
// expected, but not enforced, to be unique.
package collapse

import (
	"cmp"
	"slices"
)

// Group is one key with more than one record.
type Group[ID cmp.Ordered] struct {
	Key    string
	Keep   ID
	Delete []ID
}

// Result is the outcome of Plan.
type Result[ID cmp.Ordered] struct {
	Groups []Group[ID]
}

// DeleteIDs returns every identifier scheduled for deletion, ascending.
func (r Result[ID]) DeleteIDs() []ID {
	var ids []ID
	for _, g := range r.Groups {
		ids = append(ids, g.Delete...)
	}
	slices.Sort(ids)

	return ids
}

// Kept returns the surviving identifier per duplicated key.
func (r Result[ID]) Kept() map[string]ID {
	kept := make(map[string]ID, len(r.Groups))
	for _, g := range r.Groups {
		kept[g.Key] = g.Keep
	}

	return kept
}

// Empty reports whether there is nothing to collapse.
func (r Result[ID]) Empty() bool {
	return len(r.Groups) == 0
}

// Plan keeps the lowest identifier for every key and schedules the rest for
// deletion. Keys with a single record are left out. Groups are ordered by key.
// Plan does not mutate records, so applying its result twice is a no-op the
// second time.
func Plan[T any, ID cmp.Ordered](records []T, key func(T) string, id func(T) ID) Result[ID] {
	byKey := make(map[string][]ID)
	for _, rec := range records {
		k := key(rec)
		byKey[k] = append(byKey[k], id(rec))
	}

	keys := make([]string, 0, len(byKey))
	for k, ids := range byKey {
		if len(ids) > 1 {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	groups := make([]Group[ID], 0, len(keys))
	for _, k := range keys {
		ids := slices.Clone(byKey[k])
		slices.Sort(ids)
		groups = append(groups, Group[ID]{
			Key:    k,
			Keep:   ids[0],
			Delete: ids[1:],
		})
	}

	return Result[ID]{Groups: groups}
}
