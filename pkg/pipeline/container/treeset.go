package container

import (
	"cmp"
	"slices"
)

// TreeSet is a unique-ordered container: duplicate inserts are silently
// dropped and Values returns elements in ascending order. Create sets with
// NewTreeSet or NewTreeSetFunc; the zero value has no comparison function
// and is not usable.
type TreeSet[E any] struct {
	items   []E
	compare func(a, b E) int
}

// NewTreeSet creates an empty tree set over an ordered element type, using
// the natural ordering.
func NewTreeSet[E cmp.Ordered]() *TreeSet[E] {
	return NewTreeSetFunc[E](cmp.Compare[E])
}

// NewTreeSetFunc creates an empty tree set ordered by compare, which must
// return a negative number when a sorts before b, zero when they are equal,
// and a positive number when a sorts after b.
func NewTreeSetFunc[E any](compare func(a, b E) int) *TreeSet[E] {
	return &TreeSet[E]{compare: compare}
}

// Insert adds v to the set at its sorted position. Inserting a value already
// present is a no-op.
func (s *TreeSet[E]) Insert(v E) {
	i, found := slices.BinarySearchFunc(s.items, v, s.compare)
	if found {
		return
	}
	s.items = slices.Insert(s.items, i, v)
}

// Contains reports whether v is in the set.
func (s *TreeSet[E]) Contains(v E) bool {
	_, found := slices.BinarySearchFunc(s.items, v, s.compare)
	return found
}

// Len returns the number of elements in the set.
func (s *TreeSet[E]) Len() int {
	return len(s.items)
}

// Values returns the set's elements as a fresh slice in ascending order.
// The copy keeps callers from disturbing the sorted-unique invariant.
func (s *TreeSet[E]) Values() []E {
	return slices.Clone(s.items)
}

// Kind returns "treeset".
func (s *TreeSet[E]) Kind() string {
	return "treeset"
}
