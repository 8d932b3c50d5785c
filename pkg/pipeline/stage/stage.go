package stage

import (
	"errors"
	"time"

	"github.com/vnykmshr/seqflow/pkg/metrics"
)

// ErrEmptySequence is returned by Reduce when the range holds no element to
// seed the fold with.
var ErrEmptySequence = errors.New("stage: empty sequence")

// Stage is one node of a transformation pipeline over a finite in-memory
// sequence. Every Stage is a read-only view of a half-open range of
// elements: sources view caller-supplied storage, materializing operations
// (Filter, Map, Sorted) view freshly allocated storage of their own, and
// narrowing operations (Take, Skip, TakeWhile, SkipWhile) view a sub-range
// of their input's storage without copying.
//
// Stage values are immutable; every operation returns a new Stage and never
// mutates the receiver or the viewed storage. Derived stages share backing
// storage with their input, and the runtime keeps that storage alive for as
// long as any derived stage exists, so a narrowed stage stays valid after
// its upstream stage value is gone. The one obligation left with the caller
// is external: a slice handed to a source must not be mutated while stages
// over it are in use.
//
// All operations run eagerly and synchronously; a chain of calls completes
// its full work before returning.
type Stage[T any] struct {
	view  []T
	instr *instrumentation
}

// Len returns the number of elements in the stage's range.
func (s Stage[T]) Len() int {
	return len(s.view)
}

// instrumentation carries the metrics identity a stage was constructed
// with; derived stages inherit it. A nil *instrumentation disables all
// recording.
type instrumentation struct {
	name     string
	registry *metrics.Registry
	enabled  bool
}

func (in *instrumentation) recordOp(operation string, elements int) {
	if in == nil || !in.enabled {
		return
	}

	in.registry.PipelineOperations.WithLabelValues(operation, in.name).Inc()
	in.registry.PipelineElements.WithLabelValues(operation, in.name).Add(float64(elements))
}

func (in *instrumentation) recordError(errorType string) {
	if in == nil || !in.enabled {
		return
	}

	in.registry.PipelineErrors.WithLabelValues(errorType, in.name).Inc()
}

func (in *instrumentation) observeTerminal(operation string, start time.Time) {
	if in == nil || !in.enabled {
		return
	}

	in.registry.TerminalDuration.WithLabelValues(operation, in.name).Observe(time.Since(start).Seconds())
}
