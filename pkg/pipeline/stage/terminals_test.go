package stage

import (
	"errors"
	"testing"

	"github.com/vnykmshr/seqflow/internal/testutil"
	"github.com/vnykmshr/seqflow/pkg/pipeline/container"
)

func TestForEach(t *testing.T) {
	var collected []int

	FromSlice([]int{1, 2, 3, 4, 5}).ForEach(func(x int) {
		collected = append(collected, x*2)
	})

	testutil.AssertSliceEqual(t, collected, []int{2, 4, 6, 8, 10})
}

func TestForEachIndexed(t *testing.T) {
	var indices []int
	var values []string

	FromSlice([]string{"a", "b", "c"}).ForEachIndexed(func(i int, v string) {
		indices = append(indices, i)
		values = append(values, v)
	})

	testutil.AssertSliceEqual(t, indices, []int{0, 1, 2})
	testutil.AssertSliceEqual(t, values, []string{"a", "b", "c"})
}

func TestReduce(t *testing.T) {
	sum, err := FromSlice([]int{1, 2, 3, 4}).Reduce(func(acc, x int) int {
		return acc + x
	})

	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sum, 10)
}

func TestReduceSingleElement(t *testing.T) {
	v, err := Of(42).Reduce(func(acc, x int) int { return acc + x })

	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 42)
}

func TestReduceEmpty(t *testing.T) {
	_, err := Empty[int]().Reduce(func(acc, x int) int { return acc + x })

	testutil.AssertError(t, err)
	testutil.AssertEqual(t, errors.Is(err, ErrEmptySequence), true)
}

func TestFoldMethod(t *testing.T) {
	sum := FromSlice([]int{1, 2, 3, 4}).Fold(0, func(acc, x int) int {
		return acc + x
	})

	testutil.AssertEqual(t, sum, 10)
}

func TestFoldEmptyReturnsSeed(t *testing.T) {
	testutil.AssertEqual(t, Empty[int]().Fold(7, func(acc, x int) int { return acc + x }), 7)
	testutil.AssertEqual(t, Fold(Empty[string](), 3, func(acc int, v string) int { return acc + len(v) }), 3)
}

func TestFoldChangesAccumulatorType(t *testing.T) {
	total := Fold(FromSlice([]string{"go", "seq", "flow"}), 0, func(acc int, w string) int {
		return acc + len(w)
	})

	testutil.AssertEqual(t, total, 9)
}

func TestAny(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})

	testutil.AssertEqual(t, s.Any(func(x int) bool { return x%2 == 0 }), true)
	testutil.AssertEqual(t, s.Any(func(x int) bool { return x > 10 }), false)
}

func TestAnyEmptyIsFalse(t *testing.T) {
	testutil.AssertEqual(t, Empty[int]().Any(func(x int) bool { return true }), false)
}

func TestAll(t *testing.T) {
	testutil.AssertEqual(t, FromSlice([]int{2, 4, 6, 8}).All(func(x int) bool { return x%2 == 0 }), true)
	testutil.AssertEqual(t, FromSlice([]int{1, 2, 3, 4}).All(func(x int) bool { return x%2 == 0 }), false)
}

func TestAllEmptyIsTrue(t *testing.T) {
	testutil.AssertEqual(t, Empty[int]().All(func(x int) bool { return false }), true)
}

func TestNone(t *testing.T) {
	s := FromSlice([]int{1, 3, 5, 7})

	testutil.AssertEqual(t, s.None(func(x int) bool { return x%2 == 0 }), true)
	testutil.AssertEqual(t, s.None(func(x int) bool { return x == 3 }), false)
	testutil.AssertEqual(t, Empty[int]().None(func(x int) bool { return true }), true)
}

func TestFirst(t *testing.T) {
	v, ok := FromSlice([]int{10, 20, 30}).First()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 10)

	v, ok = Empty[int]().First()
	testutil.AssertEqual(t, ok, false)
	testutil.AssertEqual(t, v, 0)
}

func TestMinMax(t *testing.T) {
	s := FromSlice([]int{5, 2, 8, 1, 9, 3})
	compare := func(a, b int) int { return a - b }

	minVal, ok := s.Min(compare)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, minVal, 1)

	maxVal, ok := s.Max(compare)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, maxVal, 9)

	_, ok = Empty[int]().Min(compare)
	testutil.AssertEqual(t, ok, false)

	_, ok = Empty[int]().Max(compare)
	testutil.AssertEqual(t, ok, false)
}

func TestCollectList(t *testing.T) {
	lst := Collect(FromSlice([]int{3, 1, 3, 2}), container.NewList[int]())

	testutil.AssertEqual(t, lst.Len(), 4)
	testutil.AssertSliceEqual(t, lst.Values(), []int{3, 1, 3, 2}) // Order and duplicates kept
}

func TestCollectHashSetDeduplicates(t *testing.T) {
	set := Collect(FromSlice([]int{1, 1, 2, 2, 3}), container.NewHashSet[int]())

	testutil.AssertEqual(t, set.Len(), 3)
	testutil.AssertEqual(t, set.Contains(1), true)
	testutil.AssertEqual(t, set.Contains(2), true)
	testutil.AssertEqual(t, set.Contains(3), true)
}

func TestCollectTreeSetSortsAndDeduplicates(t *testing.T) {
	set := Collect(FromSlice([]int{5, 1, 5, 3, 1}), container.NewTreeSet[int]())

	testutil.AssertSliceEqual(t, set.Values(), []int{1, 3, 5})
}

func TestCollectEmpty(t *testing.T) {
	lst := Collect(Empty[string](), container.NewList[string]())

	testutil.AssertEqual(t, lst.Len(), 0)
}

func TestCollectAfterMapDeduplicates(t *testing.T) {
	identity := func(x int) int { return x }
	set := Collect(Map(FromSlice([]int{1, 1, 2, 2, 3}), identity), container.NewHashSet[int]())

	testutil.AssertEqual(t, set.Len(), 3)
}
