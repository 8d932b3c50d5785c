package container

// HashSet is a unique-unordered container: duplicate inserts are silently
// dropped and iteration order is unspecified. The zero value is an empty set
// ready to use.
type HashSet[E comparable] struct {
	items map[E]struct{}
}

// NewHashSet creates an empty hash set.
func NewHashSet[E comparable]() *HashSet[E] {
	return &HashSet[E]{}
}

// Insert adds v to the set. Inserting a value already present is a no-op.
func (s *HashSet[E]) Insert(v E) {
	if s.items == nil {
		s.items = make(map[E]struct{})
	}
	s.items[v] = struct{}{}
}

// Contains reports whether v is in the set.
func (s *HashSet[E]) Contains(v E) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of elements in the set.
func (s *HashSet[E]) Len() int {
	return len(s.items)
}

// Values returns the set's elements as a fresh slice in unspecified order.
func (s *HashSet[E]) Values() []E {
	values := make([]E, 0, len(s.items))
	for v := range s.items {
		values = append(values, v)
	}
	return values
}

// Kind returns "hashset".
func (s *HashSet[E]) Kind() string {
	return "hashset"
}
