package stage

import (
	"github.com/vnykmshr/seqflow/pkg/metrics"
	"github.com/vnykmshr/seqflow/pkg/pipeline/container"
)

// FromSlice creates a source stage viewing items directly, without copying.
// The slice must not be mutated while the stage or any stage derived from
// it is in use.
func FromSlice[T any](items []T) Stage[T] {
	return Stage[T]{view: items}
}

// FromSliceWithMetrics creates a source stage like FromSlice and attaches a
// metrics identity to it: every operation on the stage and its descendants
// is recorded under the given pipeline name.
func FromSliceWithMetrics[T any](items []T, name string, metricsConfig metrics.Config) Stage[T] {
	s := FromSlice(items)

	if !metricsConfig.Enabled {
		return s
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	s.instr = &instrumentation{
		name:     name,
		registry: registry,
		enabled:  true,
	}

	return s
}

// Of creates a source stage over the given elements.
func Of[T any](items ...T) Stage[T] {
	return FromSlice(items)
}

// Empty creates a stage with an empty range.
func Empty[T any]() Stage[T] {
	return Stage[T]{}
}

// Range creates a stage over the integers [start, end), materialized at
// call time. An empty stage is returned when end <= start.
func Range(start, end int) Stage[int] {
	if end < start {
		end = start
	}

	items := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, i)
	}

	return Stage[int]{view: items}
}

// FromContainer creates a source stage over a container's values. For kinds
// whose Values returns live storage (container.List), the stage views that
// storage directly and the container must not be modified while the stage
// is in use; set kinds hand over a fresh snapshot.
func FromContainer[E any](c container.Container[E]) Stage[E] {
	return FromSlice(c.Values())
}
