package container

import (
	"slices"
)

// List is an ordered-append container: insertion order is preserved and
// duplicates are allowed. The zero value is an empty list ready to use.
type List[E any] struct {
	items []E
}

// NewList creates an empty list.
func NewList[E any]() *List[E] {
	return &List[E]{}
}

// Insert appends v to the end of the list.
func (l *List[E]) Insert(v E) {
	l.items = append(l.items, v)
}

// Grow ensures the list has capacity for n more elements without another
// allocation. No-op for n <= 0.
func (l *List[E]) Grow(n int) {
	if n <= 0 {
		return
	}
	l.items = slices.Grow(l.items, n)
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	return len(l.items)
}

// Values returns the list's backing slice without copying. The slice stays
// valid until the next Insert; mutating it mutates the list.
func (l *List[E]) Values() []E {
	return l.items
}

// Kind returns "list".
func (l *List[E]) Kind() string {
	return "list"
}
