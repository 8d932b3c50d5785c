/*
Package pipeline provides eager, type-checked transformation pipelines over
finite in-memory sequences.

This package provides two components:

  - stage: Chainable sequence operations (map, filter, bounded windows) ending
    in a reduction or collection step
  - container: Pluggable collect targets with ordered-append and deduplicating
    insertion semantics

Basic usage:

	evens := stage.FromSlice(numbers).
		Filter(func(n int) bool { return n%2 == 0 }).
		ToSlice()

	unique := stage.Collect(stage.FromSlice(words), container.NewHashSet[string]())

Every operation runs synchronously to completion; there is no lazy evaluation
across calls and no goroutine involvement.
*/
package pipeline
