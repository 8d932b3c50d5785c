package stage

import (
	"slices"

	"github.com/vnykmshr/seqflow/pkg/pipeline/container"
)

// Filter returns a materializing stage holding, in order, exactly the
// elements of the range for which predicate returns true. The predicate is
// evaluated once per element, at call time.
func (s Stage[T]) Filter(predicate func(v T) bool) Stage[T] {
	out := container.NewList[T]()
	out.Grow(len(s.view))

	for _, v := range s.view {
		if predicate(v) {
			out.Insert(v)
		}
	}

	s.instr.recordOp("filter", len(s.view))

	return Stage[T]{view: out.Values(), instr: s.instr}
}

// Map returns a materializing stage holding transform applied to every
// element of the range, in order. For transforms that change the element
// type, use the package-level Map.
func (s Stage[T]) Map(transform func(v T) T) Stage[T] {
	return Map(s, transform)
}

// Map returns a materializing stage holding transform applied to every
// element of s's range, in order. The result element type follows the
// transform.
func Map[T, R any](s Stage[T], transform func(v T) R) Stage[R] {
	out := container.NewList[R]()
	out.Grow(len(s.view))

	for _, v := range s.view {
		out.Insert(transform(v))
	}

	s.instr.recordOp("map", len(s.view))

	return Stage[R]{view: out.Values(), instr: s.instr}
}

// FlatMap returns a materializing stage holding the concatenation, in
// order, of the slices transform produces for the elements of s's range.
func FlatMap[T, R any](s Stage[T], transform func(v T) []R) Stage[R] {
	out := container.NewList[R]()

	for _, v := range s.view {
		for _, r := range transform(v) {
			out.Insert(r)
		}
	}

	s.instr.recordOp("flat_map", len(s.view))

	return Stage[R]{view: out.Values(), instr: s.instr}
}

// Distinct returns a materializing stage holding the first occurrence of
// each value of s's range, in order of first appearance.
func Distinct[T comparable](s Stage[T]) Stage[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy returns a materializing stage holding one element per distinct
// key, in order of first appearance; the first element producing a key
// wins.
func DistinctBy[T any, K comparable](s Stage[T], key func(v T) K) Stage[T] {
	out := container.NewList[T]()
	seen := container.NewHashSet[K]()

	for _, v := range s.view {
		k := key(v)
		if seen.Contains(k) {
			continue
		}

		seen.Insert(k)
		out.Insert(v)
	}

	s.instr.recordOp("distinct", len(s.view))

	return Stage[T]{view: out.Values(), instr: s.instr}
}

// Take narrows the range to its first min(n, Len) elements without
// copying. n <= 0 yields an empty range; n >= Len leaves the range
// unchanged.
func (s Stage[T]) Take(n int) Stage[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.view) {
		n = len(s.view)
	}

	s.instr.recordOp("take", n)

	return Stage[T]{view: s.view[:n], instr: s.instr}
}

// Skip narrows the range by dropping its first min(n, Len) elements
// without copying. Skip(0) leaves the range unchanged; n >= Len yields an
// empty range.
func (s Stage[T]) Skip(n int) Stage[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.view) {
		n = len(s.view)
	}

	s.instr.recordOp("skip", n)

	return Stage[T]{view: s.view[n:], instr: s.instr}
}

// TakeWhile narrows the range to the longest prefix on which predicate
// holds, stopping exclusive of the first failing element. No copying.
func (s Stage[T]) TakeWhile(predicate func(v T) bool) Stage[T] {
	end := 0
	for end < len(s.view) && predicate(s.view[end]) {
		end++
	}

	s.instr.recordOp("take_while", end)

	return Stage[T]{view: s.view[:end], instr: s.instr}
}

// SkipWhile narrows the range by dropping the longest prefix on which
// predicate holds; the result begins at the first failing element and is
// empty when predicate holds throughout. No copying.
func (s Stage[T]) SkipWhile(predicate func(v T) bool) Stage[T] {
	begin := 0
	for begin < len(s.view) && predicate(s.view[begin]) {
		begin++
	}

	s.instr.recordOp("skip_while", begin)

	return Stage[T]{view: s.view[begin:], instr: s.instr}
}

// Sorted returns a materializing stage holding the range's elements sorted
// by compare, which must return a negative number when a sorts before b,
// zero when they are equal, and a positive number otherwise. The sort is
// stable.
func (s Stage[T]) Sorted(compare func(a, b T) int) Stage[T] {
	out := slices.Clone(s.view)
	slices.SortStableFunc(out, compare)

	s.instr.recordOp("sorted", len(out))

	return Stage[T]{view: out, instr: s.instr}
}

// Peek visits every element of the range in order for side effects and
// returns the stage unchanged. The visit happens immediately, not when a
// terminal runs.
func (s Stage[T]) Peek(action func(v T)) Stage[T] {
	for _, v := range s.view {
		action(v)
	}

	s.instr.recordOp("peek", len(s.view))

	return s
}
