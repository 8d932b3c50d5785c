package stage

import (
	"time"

	"github.com/vnykmshr/seqflow/pkg/pipeline/container"
)

// ForEach visits every element of the range in order, invoking consumer
// for its side effects.
func (s Stage[T]) ForEach(consumer func(v T)) {
	start := time.Now()

	for _, v := range s.view {
		consumer(v)
	}

	s.instr.recordOp("for_each", len(s.view))
	s.instr.observeTerminal("for_each", start)
}

// ForEachIndexed visits every element of the range in order, supplying the
// zero-based position alongside the element.
func (s Stage[T]) ForEachIndexed(consumer func(i int, v T)) {
	start := time.Now()

	for i, v := range s.view {
		consumer(i, v)
	}

	s.instr.recordOp("for_each_indexed", len(s.view))
	s.instr.observeTerminal("for_each_indexed", start)
}

// Reduce folds the range left to right using its first element as the
// seed. It returns ErrEmptySequence on an empty range; callers that cannot
// guarantee a non-empty range should branch on that error or use Fold.
func (s Stage[T]) Reduce(reducer func(acc, v T) T) (T, error) {
	start := time.Now()

	if len(s.view) == 0 {
		s.instr.recordError("empty_sequence")

		var zero T
		return zero, ErrEmptySequence
	}

	acc := s.view[0]
	for _, v := range s.view[1:] {
		acc = reducer(acc, v)
	}

	s.instr.recordOp("reduce", len(s.view))
	s.instr.observeTerminal("reduce", start)

	return acc, nil
}

// Fold folds the range left to right starting from seed; the empty range
// returns seed unchanged. For accumulators of a different type than the
// element, use the package-level Fold.
func (s Stage[T]) Fold(seed T, reducer func(acc, v T) T) T {
	return Fold(s, seed, reducer)
}

// Fold folds s's range left to right starting from seed; the empty range
// returns seed unchanged.
func Fold[T, R any](s Stage[T], seed R, reducer func(acc R, v T) R) R {
	start := time.Now()

	acc := seed
	for _, v := range s.view {
		acc = reducer(acc, v)
	}

	s.instr.recordOp("fold", len(s.view))
	s.instr.observeTerminal("fold", start)

	return acc
}

// scanMatch reports whether predicate holds for some element, and how many
// elements were inspected before stopping.
func (s Stage[T]) scanMatch(predicate func(v T) bool) (bool, int) {
	for i, v := range s.view {
		if predicate(v) {
			return true, i + 1
		}
	}

	return false, len(s.view)
}

// Any reports whether predicate holds for at least one element, stopping
// at the first match. The empty range yields false.
func (s Stage[T]) Any(predicate func(v T) bool) bool {
	start := time.Now()

	matched, scanned := s.scanMatch(predicate)

	s.instr.recordOp("any", scanned)
	s.instr.observeTerminal("any", start)

	return matched
}

// All reports whether predicate holds for every element, stopping at the
// first failure. The empty range yields true.
func (s Stage[T]) All(predicate func(v T) bool) bool {
	start := time.Now()

	failed, scanned := s.scanMatch(func(v T) bool { return !predicate(v) })

	s.instr.recordOp("all", scanned)
	s.instr.observeTerminal("all", start)

	return !failed
}

// None reports whether predicate holds for no element, stopping at the
// first match. The empty range yields true.
func (s Stage[T]) None(predicate func(v T) bool) bool {
	start := time.Now()

	matched, scanned := s.scanMatch(predicate)

	s.instr.recordOp("none", scanned)
	s.instr.observeTerminal("none", start)

	return !matched
}

// First returns the first element of the range; ok is false on an empty
// range.
func (s Stage[T]) First() (T, bool) {
	if len(s.view) == 0 {
		var zero T
		return zero, false
	}

	return s.view[0], true
}

// Min returns the smallest element under compare; ok is false on an empty
// range. The earliest of equal-smallest elements wins.
func (s Stage[T]) Min(compare func(a, b T) int) (T, bool) {
	start := time.Now()

	if len(s.view) == 0 {
		var zero T
		return zero, false
	}

	best := s.view[0]
	for _, v := range s.view[1:] {
		if compare(v, best) < 0 {
			best = v
		}
	}

	s.instr.recordOp("min", len(s.view))
	s.instr.observeTerminal("min", start)

	return best, true
}

// Max returns the largest element under compare; ok is false on an empty
// range. The earliest of equal-largest elements wins.
func (s Stage[T]) Max(compare func(a, b T) int) (T, bool) {
	start := time.Now()

	if len(s.view) == 0 {
		var zero T
		return zero, false
	}

	best := s.view[0]
	for _, v := range s.view[1:] {
		if compare(v, best) > 0 {
			best = v
		}
	}

	s.instr.recordOp("max", len(s.view))
	s.instr.observeTerminal("max", start)

	return best, true
}

// ToSlice returns the range as a fresh slice owned by the caller; the
// empty range yields an empty, non-nil slice.
func (s Stage[T]) ToSlice() []T {
	start := time.Now()

	out := make([]T, len(s.view))
	copy(out, s.view)

	s.instr.recordOp("to_slice", len(s.view))
	s.instr.observeTerminal("to_slice", start)

	return out
}

// Collect inserts every element of s's range, in order, into dst using the
// target's insertion semantics, and returns dst. A target only needs an
// Insert method; collecting into a type without one does not compile.
func Collect[E any, C container.Inserter[E]](s Stage[E], dst C) C {
	start := time.Now()

	for _, v := range s.view {
		dst.Insert(v)
	}

	s.instr.recordOp("collect", len(s.view))
	s.instr.observeTerminal("collect", start)

	return dst
}
