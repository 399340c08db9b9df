package stream_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/jutil/comparator"
	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/optional"
	"github.com/charmingruby/jutil/stream"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilterCount(t *testing.T) {
	n, err := stream.Of(1, 2, 3, 4, 5).Filter(isEven).Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = stream.Of("foo", "bar", "baz").Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestOfSliceVersusSingleSliceElement(t *testing.T) {
	words := []string{"foo", "bar"}

	n, err := stream.Of(words).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = stream.OfSlice(words).Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = stream.Of(words...).Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestIntermediateOperationsAreLazy(t *testing.T) {
	var events []string
	s := stream.Map(
		stream.Of(1, 2, 3).Filter(func(n int) bool {
			events = append(events, fmt.Sprintf("filter%d", n))
			return n != 2
		}),
		func(n int) int {
			events = append(events, fmt.Sprintf("map%d", n))
			return n * 10
		},
	).Peek(func(n int) {
		events = append(events, fmt.Sprintf("peek%d", n))
	})

	assert.Empty(t, events, "building a pipeline must not pull any element")

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{
		"filter1", "map1", "peek10",
		"filter2",
		"filter3", "map3", "peek30",
	}, events)
}

func TestSecondTerminalFails(t *testing.T) {
	s := stream.Of(1, 2, 3)
	_, err := s.Count()
	require.NoError(t, err)

	_, err = s.Count()
	assert.ErrorIs(t, err, errs.ErrIllegalState)

	_, err = s.Filter(isEven).ToSlice()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
}

func TestTerminalOnDerivedStageConsumesSource(t *testing.T) {
	source := stream.Of(1, 2, 3)
	evens := source.Filter(isEven)

	got, err := evens.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)

	_, err = source.Count()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
}

func TestClosedStreamRejectsTerminal(t *testing.T) {
	s := stream.Of(1)
	require.NoError(t, s.Close())
	_, err := s.Count()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
}

func TestZeroValueStreamIsEmpty(t *testing.T) {
	var s stream.Stream[int]
	got, err := s.ToSlice()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestToSliceOnEmpty(t *testing.T) {
	got, err := stream.Empty[string]().ToSlice()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLimitAndSkip(t *testing.T) {
	got, err := stream.Range(0, 10).Skip(3).Limit(4).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6}, got)

	got, err = stream.Of(1, 2).Skip(5).ToSlice()
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = stream.Of(1).Limit(-1).Count()
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = stream.Of(1).Skip(-1).Count()
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestLimitDoesNotOverPull(t *testing.T) {
	pulled := 0
	got, err := stream.Generate(func() int {
		pulled++
		return pulled
	}).Limit(3).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, pulled)
}

func TestTakeWhileAndDropWhile(t *testing.T) {
	small := func(n int) bool { return n < 3 }

	got, err := stream.Of(1, 2, 3, 1, 2).TakeWhile(small).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = stream.Of(1, 2, 3, 1, 2).DropWhile(small).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got)
}

func TestIterateSources(t *testing.T) {
	got, err := stream.Iterate(1, func(n int) int { return n * 2 }).Limit(5).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, got)

	got, err = stream.IterateWhile(1, func(n int) bool { return n < 20 }, func(n int) int { return n * 3 }).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 9}, got)

	bytes, err := stream.RangeClosed[uint8](253, 255).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []uint8{253, 254, 255}, bytes)

	got, err = stream.Range(5, 2).ToSlice()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOfOptional(t *testing.T) {
	got, err := stream.OfOptional(optional.Of("x")).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)

	n, err := stream.OfOptional(optional.Empty[string]()).Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConcatIsLazyAndLinksInputs(t *testing.T) {
	pulled := 0
	counting := func(values ...int) stream.Stream[int] {
		return stream.Of(values...).Peek(func(int) { pulled++ })
	}
	a, b := counting(1, 2), counting(3)

	both := stream.Concat(a, b)
	assert.Zero(t, pulled)

	got, err := both.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, pulled)

	_, err = a.Count()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
	_, err = b.Count()
	assert.ErrorIs(t, err, errs.ErrIllegalState)

	c := stream.Of(1)
	_, err = c.Count()
	require.NoError(t, err)
	_, err = stream.Concat(c, stream.Of(2)).Count()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
}

func TestMapAndFlatMap(t *testing.T) {
	lengths, err := stream.Map(stream.Of("a", "bb", "ccc"), func(s string) int { return len(s) }).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, lengths)

	closed := 0
	letters, err := stream.FlatMap(stream.Of("ab", "", "c"), func(s string) stream.Stream[string] {
		return stream.OfSlice(strings.Split(s, "")).OnClose(func() error {
			closed++
			return nil
		})
	}).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, letters)
	assert.Equal(t, 3, closed)
}

func TestFlatMapRejectsConsumedInner(t *testing.T) {
	inner := stream.Of(1)
	_, err := inner.Count()
	require.NoError(t, err)

	_, err = stream.FlatMap(stream.Of(1), func(int) stream.Stream[int] { return inner }).ToSlice()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
}

func TestDistinct(t *testing.T) {
	got, err := stream.Distinct(stream.Of(3, 1, 3, 2, 1)).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got)

	words, err := stream.DistinctBy(stream.Of("Go", "go", "Rust", "GO"), strings.ToLower).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, words)
}

func TestSorted(t *testing.T) {
	got, err := stream.Of(3, 1, 2).Sorted().ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	type pair struct {
		key   int
		label string
	}
	pairs, err := stream.Of(pair{2, "a"}, pair{1, "b"}, pair{2, "c"}, pair{1, "d"}).
		SortedWith(comparator.Comparing(func(p pair) int { return p.key })).
		ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, pairs, "sorting is stable")
}

func TestSortedIsLazy(t *testing.T) {
	pulled := 0
	s := stream.Of(2, 1).Peek(func(int) { pulled++ }).Sorted()
	assert.Zero(t, pulled)

	first, err := s.FindFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, first.MustGet())
	assert.Equal(t, 2, pulled)
}

func TestComparisonFailuresBecomeErrors(t *testing.T) {
	_, err := stream.Of[any](1, "a", 2).Sorted().ToSlice()
	assert.ErrorIs(t, err, errs.ErrTypeMismatch)

	_, err = stream.Of[any](1, nil).Max(comparator.NaturalOrder[any]())
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	_, err = stream.Of[any](struct{}{}, struct{}{}).Min(comparator.NaturalOrder[any]())
	assert.ErrorIs(t, err, errs.ErrIncomparable)
}

func TestUserPanicsPropagate(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_, _ = stream.Map(stream.Of(1), func(int) int { panic("boom") }).Count()
	})
}

func TestNilCallbacks(t *testing.T) {
	_, err := stream.Of(1).Filter(nil).Count()
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	_, err = stream.Map[int, int](stream.Of(1), nil).Count()
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	err = stream.Of(1).ForEach(nil)
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	_, err = stream.Of(1).Reduce(nil)
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	_, err = stream.Of(1).AnyMatch(nil)
	assert.ErrorIs(t, err, errs.ErrNullArgument)
}

func TestReduceAndFold(t *testing.T) {
	sum := func(a, b int) int { return a + b }

	total, err := stream.Of(1, 2, 3, 4).Reduce(sum)
	require.NoError(t, err)
	assert.Equal(t, 10, total.MustGet())

	empty, err := stream.Empty[int]().Reduce(sum)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	withIdentity, err := stream.Empty[int]().ReduceWith(100, sum)
	require.NoError(t, err)
	assert.Equal(t, 100, withIdentity)

	joined, err := stream.Fold(stream.Of(1, 2, 3), "", func(acc string, n int) string {
		return acc + fmt.Sprint(n)
	})
	require.NoError(t, err)
	assert.Equal(t, "123", joined)
}

func TestMinMax(t *testing.T) {
	type entry struct {
		name  string
		score int
	}
	byScore := comparator.Comparing(func(e entry) int { return e.score })
	entries := []entry{{"a", 2}, {"b", 5}, {"c", 1}, {"d", 5}, {"e", 1}}

	lo, err := stream.OfSlice(entries).Min(byScore)
	require.NoError(t, err)
	assert.Equal(t, entry{"c", 1}, lo.MustGet())

	hi, err := stream.OfSlice(entries).Max(byScore)
	require.NoError(t, err)
	assert.Equal(t, entry{"b", 5}, hi.MustGet())

	none, err := stream.Empty[entry]().Max(byScore)
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())
}

func TestFindAndMatch(t *testing.T) {
	pulled := 0
	first, err := stream.Of(4, 5, 6).Peek(func(int) { pulled++ }).FindFirst()
	require.NoError(t, err)
	assert.Equal(t, 4, first.MustGet())
	assert.Equal(t, 1, pulled)

	anyValue, err := stream.Empty[int]().FindAny()
	require.NoError(t, err)
	assert.True(t, anyValue.IsEmpty())

	ok, err := stream.Of(1, 3, 4).AnyMatch(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = stream.Of(2, 4, 5).AllMatch(isEven)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = stream.Of(1, 3).NoneMatch(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = stream.Empty[int]().AllMatch(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = stream.Empty[int]().AnyMatch(isEven)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShortCircuitStopsPulling(t *testing.T) {
	ok, err := stream.Iterate(1, func(n int) int { return n + 1 }).AnyMatch(func(n int) bool { return n > 100 })
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestForEachOrder(t *testing.T) {
	var seen []string
	require.NoError(t, stream.Of("x", "y", "z").ForEach(func(s string) { seen = append(seen, s) }))
	assert.Equal(t, []string{"x", "y", "z"}, seen)
}

func TestIteratorTerminal(t *testing.T) {
	s := stream.Of(1, 2)
	it, err := s.Iterator()
	require.NoError(t, err)

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)

	_, err = s.Iterator()
	assert.ErrorIs(t, err, errs.ErrIllegalState)
}

func TestCloseHandlers(t *testing.T) {
	var order []string
	handler := func(name string) func() error {
		return func() error {
			order = append(order, name)
			return nil
		}
	}
	a := stream.Of(1).OnClose(handler("a1")).OnClose(handler("a2"))
	b := stream.Of(2).OnClose(handler("b"))
	both := stream.Concat(a, b).OnClose(handler("concat"))

	require.NoError(t, both.Close())
	assert.Equal(t, []string{"concat", "a1", "a2", "b"}, order)

	require.NoError(t, both.Close())
	assert.Len(t, order, 4, "handlers run once")
}

func TestCloseJoinsHandlerErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	s := stream.Of(1).
		OnClose(func() error { return errA }).
		OnClose(func() error { return errB }).
		OnClose(nil)

	err := s.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.ErrorIs(t, err, errs.ErrNullArgument)
}

func TestParallelIsNotSupported(t *testing.T) {
	s := stream.Of(1, 2)
	assert.False(t, s.IsParallel())
	assert.False(t, s.Sequential().IsParallel())

	_, err := s.Parallel()
	assert.ErrorIs(t, err, errs.ErrNotImplemented)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDrainIterator(t *testing.T) {
	calls := 0
	it := stream.IteratorFunc(func() (int, bool) {
		calls++
		return calls, calls <= 3
	})
	assert.Equal(t, []int{1, 2, 3}, stream.Drain(it))
	assert.Equal(t, []int{}, stream.Drain(stream.FromSlice[int](nil)))
}

func TestReduceOfNonEmptyStreamNeverReturnsEmpty(t *testing.T) {
	one, two := 1, 2
	byValue := comparator.Comparing(func(p *int) int { return *p })

	_, err := stream.Of[*int](nil, &one).Min(comparator.NullsFirst(byValue))
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	_, err = stream.Of[*int](&one, nil).Max(comparator.NullsLast(byValue))
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	_, err = stream.Of[*int](nil).Reduce(func(a, _ *int) *int { return a })
	assert.ErrorIs(t, err, errs.ErrNullArgument)

	lo, err := stream.Of[*int](&two, nil, &one).Min(comparator.NullsLast(byValue))
	require.NoError(t, err)
	assert.Same(t, &one, lo.MustGet())
}

func TestCloseReleasesInnerStreamLeftOpenByShortCircuit(t *testing.T) {
	closed := map[string]int{}
	letters := func(word string) stream.Stream[string] {
		return stream.OfSlice(strings.Split(word, "")).OnClose(func() error {
			closed[word]++
			return nil
		})
	}

	flat := stream.FlatMap(stream.Of("abc", "de"), letters)
	first, err := flat.FindFirst()
	require.NoError(t, err)
	assert.Equal(t, "a", first.MustGet())
	assert.Empty(t, closed)

	require.NoError(t, flat.Close())
	assert.Equal(t, map[string]int{"abc": 1}, closed)

	limited := stream.FlatMap(stream.Of("xy", "z"), letters).Limit(3)
	got, err := limited.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, got)
	require.NoError(t, limited.Close())
	assert.Equal(t, map[string]int{"abc": 1, "xy": 1, "z": 1}, closed)
}

func TestIteratorFuncStopsAtFirstExhaustion(t *testing.T) {
	calls := 0
	it := stream.IteratorFunc(func() (int, bool) {
		calls++
		return calls * 10, calls != 2
	})

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = it.Next()
	assert.False(t, ok)
	assert.Zero(t, v)

	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, calls)
}

func TestIteratorAll(t *testing.T) {
	it := stream.FromSlice([]string{"a", "b", "c"})

	var seen []string
	for v := range it.All() {
		seen = append(seen, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, []string{"c"}, stream.Drain(it))
}
