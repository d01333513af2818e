// Package props implements the reactive property bag owned by a component
// lifecycle controller.
package props

import "reflect"

// Bag is a string-keyed collection of property values exclusively owned by
// one controller. Keys are only ever added or overwritten, never removed.
//
// Bag is not safe for concurrent use; the owning controller serializes
// access.
type Bag struct {
	values map[string]any
}

// NewBag creates an empty property bag.
func NewBag() *Bag {
	return &Bag{values: make(map[string]any)}
}

// Merge shallow-merges partial into the bag (additive union) and reports
// whether the bag changed. A key changes the bag when it is new or when its
// value differs from the stored one. Merging the same partial twice reports
// a change at most once.
func (b *Bag) Merge(partial map[string]any) bool {
	changed := false
	for key, value := range partial {
		existing, ok := b.values[key]
		if ok && valuesEqual(existing, value) {
			continue
		}
		b.values[key] = value
		changed = true
	}
	return changed
}

// Get returns the value stored under key.
func (b *Bag) Get(key string) (any, bool) {
	value, ok := b.values[key]
	return value, ok
}

// Len returns the number of stored keys.
func (b *Bag) Len() int {
	return len(b.values)
}

// Snapshot returns a shallow copy of the bag's contents. Values themselves
// are shared; the map is not.
func (b *Bag) Snapshot() map[string]any {
	snapshot := make(map[string]any, len(b.values))
	for key, value := range b.values {
		snapshot[key] = value
	}
	return snapshot
}

// valuesEqual compares two property values the way a reference-identity
// check would: comparable values are compared with ==, slices, maps,
// functions, and channels by the identity of their underlying data. Other
// non-comparable values (structs carrying slices, arrays of maps) always
// count as different.
func valuesEqual(a, b any) bool {
	if isComparable(a) && isComparable(b) {
		return a == b
	}
	return sameReference(a, b)
}

// isComparable reports whether == is safe on the value.
func isComparable(value any) bool {
	if value == nil {
		return true
	}
	return reflect.TypeOf(value).Comparable()
}

// sameReference reports whether a and b are the same slice, map, function,
// or channel. A slice must also keep its length: re-slicing the same backing
// array to a different length is a different value.
func sameReference(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func, reflect.Chan:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}
