package stream

import (
	"github.com/charmingruby/jutil/comparator"
	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/function"
	"github.com/charmingruby/jutil/internal/typeguard"
	"github.com/charmingruby/jutil/optional"
)

// terminal marks the pipeline consumed and drives run. Failures raised by
// the pipeline (comparator errors, nil callbacks, invalid arguments) come
// back as err; any other panic from user callbacks propagates unchanged.
func terminal[T any, R any](s Stream[T], op string, run func() R) (result R, err error) {
	if err = s.pipe.consume(op); err != nil {
		return result, err
	}
	defer func() {
		if err != nil {
			log().Debug().Str("op", op).Err(err).Msg("stream: terminal operation failed")
		}
	}()
	defer errs.Recover(&err)
	result = run()
	log().Debug().Str("op", op).Msg("stream: terminal operation completed")
	return result, nil
}

// Count returns the number of elements. Every stage of the pipeline runs for
// every element, so Peek and Map callbacks are observed.
func (s Stream[T]) Count() (int, error) {
	return terminal(s, "count", func() int {
		n := 0
		for {
			if _, ok := s.it.Next(); !ok {
				return n
			}
			n++
		}
	})
}

// ForEach calls action with each element in encounter order.
func (s Stream[T]) ForEach(action func(T)) error {
	if action == nil {
		return nullCallback("forEach", "action")
	}
	_, err := terminal(s, "forEach", func() struct{} {
		for {
			v, ok := s.it.Next()
			if !ok {
				return struct{}{}
			}
			action(v)
		}
	})
	return err
}

// ToSlice collects the elements into a new slice. An empty stream yields an
// empty, non-nil slice.
func (s Stream[T]) ToSlice() ([]T, error) {
	return terminal(s, "toSlice", func() []T {
		return Drain(s.it)
	})
}

// Reduce folds the elements with acc. The Optional is empty only for an
// empty stream; a nil result of a non-empty stream fails with
// errs.ErrNullArgument.
func (s Stream[T]) Reduce(acc func(T, T) T) (optional.Optional[T], error) {
	if acc == nil {
		return optional.Empty[T](), nullCallback("reduce", "accumulator")
	}
	return terminal(s, "reduce", func() optional.Optional[T] {
		result, ok := s.it.Next()
		if !ok {
			return optional.Empty[T]()
		}
		for {
			v, ok := s.it.Next()
			if !ok {
				if typeguard.IsNil(any(result)) {
					panic(errs.New(errs.ErrNullArgument, "stream: reduce: result is nil"))
				}
				return optional.Of(result)
			}
			result = acc(result, v)
		}
	})
}

// ReduceWith folds the elements with acc starting from identity.
func (s Stream[T]) ReduceWith(identity T, acc func(T, T) T) (T, error) {
	return Fold(s, identity, acc)
}

// Fold folds the elements into a value of another type, left to right.
func Fold[T any, R any](s Stream[T], initial R, acc func(R, T) R) (R, error) {
	if acc == nil {
		return initial, nullCallback("fold", "accumulator")
	}
	return terminal(s, "fold", func() R {
		result := initial
		for {
			v, ok := s.it.Next()
			if !ok {
				return result
			}
			result = acc(result, v)
		}
	})
}

// Min returns the least element according to c; the first one wins ties.
func (s Stream[T]) Min(c comparator.Comparator[T]) (optional.Optional[T], error) {
	return s.Reduce(function.MinBy(c))
}

// Max returns the greatest element according to c; the first one wins ties.
func (s Stream[T]) Max(c comparator.Comparator[T]) (optional.Optional[T], error) {
	return s.Reduce(function.MaxBy(c))
}

// FindFirst returns the first element. Nothing past it is pulled.
func (s Stream[T]) FindFirst() (optional.Optional[T], error) {
	return terminal(s, "findFirst", func() optional.Optional[T] {
		return optional.FromOk(s.it.Next())
	})
}

// FindAny returns some element. Streams are sequential, so it is the first.
func (s Stream[T]) FindAny() (optional.Optional[T], error) {
	return s.FindFirst()
}

// AnyMatch reports whether some element satisfies predicate, stopping at the
// first match. It is false for an empty stream.
func (s Stream[T]) AnyMatch(predicate func(T) bool) (bool, error) {
	if predicate == nil {
		return false, nullCallback("anyMatch", "predicate")
	}
	return terminal(s, "anyMatch", func() bool {
		return s.firstMatch(predicate)
	})
}

// AllMatch reports whether every element satisfies predicate, stopping at
// the first mismatch. It is true for an empty stream.
func (s Stream[T]) AllMatch(predicate func(T) bool) (bool, error) {
	if predicate == nil {
		return false, nullCallback("allMatch", "predicate")
	}
	return terminal(s, "allMatch", func() bool {
		return !s.firstMatch(function.Not(predicate))
	})
}

// NoneMatch reports whether no element satisfies predicate. It is true for
// an empty stream.
func (s Stream[T]) NoneMatch(predicate func(T) bool) (bool, error) {
	if predicate == nil {
		return false, nullCallback("noneMatch", "predicate")
	}
	return terminal(s, "noneMatch", func() bool {
		return !s.firstMatch(predicate)
	})
}

func (s Stream[T]) firstMatch(predicate func(T) bool) bool {
	for {
		v, ok := s.it.Next()
		if !ok {
			return false
		}
		if predicate(v) {
			return true
		}
	}
}

// Iterator hands the remaining pipeline to the caller as a pull iterator.
// Pipeline failures raised while pulling are panics, not returned errors.
func (s Stream[T]) Iterator() (Iterator[T], error) {
	return terminal(s, "iterator", func() Iterator[T] {
		return s.it
	})
}

// Collect runs the stream into c.
func Collect[T any, A any, R any](s Stream[T], c Collector[T, A, R]) (R, error) {
	if c.Supplier == nil || c.Accumulator == nil || c.Finisher == nil {
		var zero R
		return zero, nullCallback("collect", "collector function")
	}
	return terminal(s, "collect", func() R {
		container := c.Supplier()
		for {
			v, ok := s.it.Next()
			if !ok {
				return c.Finisher(container)
			}
			container = c.Accumulator(container, v)
		}
	})
}
