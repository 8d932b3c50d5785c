/*
Package stage provides an expressive, type-checked API for transforming and
reducing finite in-memory sequences in Go.

A pipeline is built from chainable stages, modeled after the stream/iterator
adapters found in many ecosystems, and ends in a reduction or collection
step, replacing hand-written loops.

Core Concepts:

A Stage is a read-only view over a range of elements. Stages are:
  - Eager: every operation completes its full pass before returning
  - Immutable: operations return new stages rather than modifying existing ones
  - Synchronous: no goroutines, no contexts, no cancellation
  - Allocation-aware: narrowing operations never copy element storage

There are three kinds of stages:

  - Source stages view caller-supplied storage without copying it
    (FromSlice, Of, FromContainer); the storage must not be mutated while
    stages over it are in use.
  - Materializing stages (Filter, Map, FlatMap, Distinct, Sorted) allocate
    and own a fresh sequence holding their result.
  - Narrowing stages (Take, Skip, TakeWhile, SkipWhile) re-slice their
    input's storage, adjusting only the visible range.

Derived stages share backing storage with their input, and the runtime
keeps that storage alive as long as any derived stage exists, so stages can
be stored and consumed later without lifetime bookkeeping.

Basic Usage:

	// Create a stage from a slice
	nums := stage.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	// Chain operations and collect results
	result := nums.
		Filter(func(x int) bool { return x%2 == 0 }). // Keep even numbers
		Map(func(x int) int { return x * x }).        // Square them
		Take(2).                                      // First two only
		ToSlice()

	fmt.Println(result) // [4 16]

Stage Creation:

	// From a slice (viewed, not copied)
	s := stage.FromSlice([]string{"a", "b", "c"})

	// From listed elements
	s := stage.Of(1, 2, 3)

	// From an integer range
	s := stage.Range(1, 11) // 1 through 10

	// From a container
	s := stage.FromContainer(ids) // any container.Container implementation

	// Empty stage
	s := stage.Empty[int]()

Changing the Element Type:

Go methods cannot introduce type parameters, so operations whose result
type differs from the element type are package-level functions taking the
stage as their first argument:

	lengths := stage.Map(words, func(w string) int { return len(w) })

	letters := stage.FlatMap(words, func(w string) []rune { return []rune(w) })

	total := stage.Fold(orders, 0.0, func(acc float64, o Order) float64 {
		return acc + o.Total
	})

The method forms (Map, Fold) cover the common same-type case.

Reductions:

Reduce seeds the fold with the first element and fails on an empty range;
Fold takes an explicit seed and is total:

	sum, err := stage.FromSlice(nums).Reduce(func(acc, x int) int { return acc + x })
	if err != nil {
		// errors.Is(err, stage.ErrEmptySequence)
	}

	sum := stage.FromSlice(nums).Fold(0, func(acc, x int) int { return acc + x })

Collecting:

Collect inserts every element into a target container, using the target
kind's insertion semantics. Any type with an Insert method can be a target;
an unsupported target is a compile error, not a runtime one:

	ordered := stage.Collect(s, container.NewList[int]())   // keeps duplicates
	unique := stage.Collect(s, container.NewHashSet[int]()) // drops duplicates
	sorted := stage.Collect(s, container.NewTreeSet[int]()) // sorted, unique

Metrics:

Stages built with FromSliceWithMetrics record operation counts, element
throughput, and terminal durations to Prometheus under a pipeline name:

	s := stage.FromSliceWithMetrics(batch, "order_totals", metrics.DefaultConfig())

See examples/metrics for a complete demonstration.

Performance Characteristics:

  - Narrowing operations are O(1) apart from predicate scans and never
    allocate element storage
  - Materializing operations allocate exactly once when the input length is
    known (Filter, Map)
  - Short-circuiting terminals (Any, All, None) stop at the first deciding
    element
  - The source slice is never copied; ToSlice copies exactly once
*/
package stage
