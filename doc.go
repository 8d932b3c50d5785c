/*
Package seqflow provides a Go library for building eager, type-checked
transformation pipelines over finite in-memory sequences.

Pipelines (pkg/pipeline):
  - stage: Chainable sequence operations (filter, map, bounded windows) with
    reducing and collecting terminals
  - container: Pluggable collect targets (ordered list, hash set, tree set)

Observability (pkg/metrics):
  - Prometheus instrumentation for pipeline operations and container inserts

Example usage:

	import (
		"github.com/vnykmshr/seqflow/pkg/pipeline/container"
		"github.com/vnykmshr/seqflow/pkg/pipeline/stage"
	)

	squares := stage.FromSlice(nums).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * n }).
		Take(2).
		ToSlice() // [4 16]

	unique := stage.Collect(stage.FromSlice(words), container.NewHashSet[string]())
*/
package seqflow
