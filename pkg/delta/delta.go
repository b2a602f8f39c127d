// Package delta computes keyed differences between a stored set and a freshly
// listed set, the same Added/Updated/Deleted classification a list-and-replace
// reflector produces, without the queue.
package delta

import "sort"

// Type is the kind of change for one key.
type Type string

const (
	Added   Type = "Added"
	Updated Type = "Updated"
	Deleted Type = "Deleted"
)

// Delta is one change. Old is the stored item (zero for Added), New the listed item
// (zero for Deleted).
type Delta[K comparable, V any] struct {
	Type Type
	Key  K
	Old  V
	New  V
}

// Replace compares stored against listed. Keys only in listed are Added, keys in
// both are Updated when equal returns false (or always, when equal is nil), keys
// only in stored are Deleted. Deltas are ordered Added, Updated, Deleted.
func Replace[K comparable, V any](stored, listed map[K]V, equal func(a, b V) bool) []Delta[K, V] {
	var added, updated, deleted []Delta[K, V]
	for k, nv := range listed {
		ov, ok := stored[k]
		if !ok {
			added = append(added, Delta[K, V]{Type: Added, Key: k, New: nv})
			continue
		}
		if equal == nil || !equal(ov, nv) {
			updated = append(updated, Delta[K, V]{Type: Updated, Key: k, Old: ov, New: nv})
		}
	}
	for k, ov := range stored {
		if _, ok := listed[k]; !ok {
			deleted = append(deleted, Delta[K, V]{Type: Deleted, Key: k, Old: ov})
		}
	}
	out := make([]Delta[K, V], 0, len(added)+len(updated)+len(deleted))
	out = append(out, added...)
	out = append(out, updated...)
	return append(out, deleted...)
}

// Keys returns the keys of the deltas of type t.
func Keys[K comparable, V any](deltas []Delta[K, V], t Type) []K {
	var keys []K
	for _, d := range deltas {
		if d.Type == t {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

// Set builds a presence map from keys.
func Set[K comparable](keys ...K) map[K]struct{} {
	s := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// SortedInt64 returns the int64 keys of the deltas of type t in ascending order.
func SortedInt64[V any](deltas []Delta[int64, V], t Type) []int64 {
	keys := Keys(deltas, t)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
