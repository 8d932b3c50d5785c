package container

// Inserter is the insertion half of a collect target: anything that accepts
// one element at a time. A container kind participates in stage.Collect by
// satisfying this interface; the check happens at compile time, so collecting
// into an unsupported target does not type-check.
type Inserter[E any] interface {
	// Insert adds v to the container using the kind's insertion semantics.
	Insert(v E)
}

// Container combines insertion with inspection. All built-in kinds satisfy
// it, and any implementation can serve as a pipeline source via
// stage.FromContainer.
type Container[E any] interface {
	Inserter[E]

	// Len returns the number of elements currently stored.
	Len() int

	// Values returns the stored elements. Ordering depends on the kind:
	// insertion order for List, ascending key order for TreeSet, unspecified
	// for HashSet.
	Values() []E

	// Kind returns a short identifier for the container kind, used as a
	// metrics label.
	Kind() string
}
