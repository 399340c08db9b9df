package stream

import (
	"slices"

	"github.com/charmingruby/jutil/comparator"
	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/function"
)

func nullCallback(op, name string) error {
	return errs.New(errs.ErrNullArgument, "stream: %s: %s must not be nil", op, name)
}

// Filter keeps the elements accepted by predicate.
func (s Stream[T]) Filter(predicate func(T) bool) Stream[T] {
	if predicate == nil {
		return s.fail(nullCallback("filter", "predicate"))
	}
	return s.derive(func() (T, bool) {
		for {
			v, ok := s.it.Next()
			if !ok {
				return v, false
			}
			if predicate(v) {
				return v, true
			}
		}
	})
}

// Peek calls action with every element as it flows past.
func (s Stream[T]) Peek(action func(T)) Stream[T] {
	if action == nil {
		return s.fail(nullCallback("peek", "action"))
	}
	return s.derive(func() (T, bool) {
		v, ok := s.it.Next()
		if ok {
			action(v)
		}
		return v, ok
	})
}

// Limit truncates the stream to at most n elements. The source is never
// pulled past the n-th element, so Limit bounds infinite streams. A negative
// n fails with errs.ErrInvalidArgument.
func (s Stream[T]) Limit(n int) Stream[T] {
	if n < 0 {
		return s.fail(errs.New(errs.ErrInvalidArgument, "stream: limit: negative size %d", n))
	}
	count := 0
	return s.derive(func() (T, bool) {
		if count >= n {
			var zero T
			return zero, false
		}
		v, ok := s.it.Next()
		if !ok {
			return v, false
		}
		count++
		return v, true
	})
}

// Skip discards the first n elements. A negative n fails with
// errs.ErrInvalidArgument.
func (s Stream[T]) Skip(n int) Stream[T] {
	if n < 0 {
		return s.fail(errs.New(errs.ErrInvalidArgument, "stream: skip: negative count %d", n))
	}
	skipped := false
	return s.derive(func() (T, bool) {
		if !skipped {
			skipped = true
			for range n {
				if v, ok := s.it.Next(); !ok {
					return v, false
				}
			}
		}
		return s.it.Next()
	})
}

// TakeWhile yields elements until predicate first rejects one.
func (s Stream[T]) TakeWhile(predicate func(T) bool) Stream[T] {
	if predicate == nil {
		return s.fail(nullCallback("takeWhile", "predicate"))
	}
	done := false
	return s.derive(func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		v, ok := s.it.Next()
		if !ok || !predicate(v) {
			done = true
			return zero, false
		}
		return v, true
	})
}

// DropWhile discards elements while predicate accepts them and yields the
// rest unchanged.
func (s Stream[T]) DropWhile(predicate func(T) bool) Stream[T] {
	if predicate == nil {
		return s.fail(nullCallback("dropWhile", "predicate"))
	}
	dropping := true
	return s.derive(func() (T, bool) {
		if !dropping {
			return s.it.Next()
		}
		dropping = false
		for {
			v, ok := s.it.Next()
			if !ok || !predicate(v) {
				return v, ok
			}
		}
	})
}

// Sorted orders the elements by comparator.NaturalOrder. See SortedWith.
func (s Stream[T]) Sorted(opts ...comparator.Option) Stream[T] {
	return s.SortedWith(comparator.NaturalOrder[T](opts...))
}

// SortedWith orders the elements by c, keeping equal elements in encounter
// order. The upstream is buffered on the first pull, not when the stage is
// built. Comparison failures surface as the terminal operation's error.
func (s Stream[T]) SortedWith(c comparator.Comparator[T]) Stream[T] {
	var sorted Iterator[T]
	loaded := false
	return s.derive(func() (T, bool) {
		if !loaded {
			loaded = true
			values := Drain(s.it)
			slices.SortStableFunc(values, c.Compare)
			sorted = FromSlice(values)
		}
		return sorted.Next()
	})
}

// Map transforms each element with fn.
func Map[T any, U any](s Stream[T], fn func(T) U) Stream[U] {
	if fn == nil {
		return Stream[U]{it: failing[U](nullCallback("map", "mapper")), pipe: s.pipe}
	}
	return Stream[U]{
		it: Iterator[U]{
			next: func() (U, bool) {
				v, ok := s.it.Next()
				if !ok {
					var zero U
					return zero, false
				}
				return fn(v), true
			},
		},
		pipe: s.pipe,
	}
}

// FlatMap replaces each element with the contents of the stream fn returns
// for it. Every inner stream is consumed by FlatMap and closed once drained,
// or by Close when a short-circuiting terminal stopped inside it. An inner
// stream that was already used fails with errs.ErrIllegalState.
func FlatMap[T any, U any](s Stream[T], fn func(T) Stream[U]) Stream[U] {
	if fn == nil {
		return Stream[U]{it: failing[U](nullCallback("flatMap", "mapper")), pipe: s.pipe}
	}
	var inner Stream[U]
	active := false
	pipe := s.pipe
	if pipe == nil {
		pipe = newPipeline()
	}
	pipe.handlers = append(pipe.handlers, func() error {
		if !active {
			return nil
		}
		active = false
		return inner.Close()
	})
	return Stream[U]{
		it: Iterator[U]{
			next: func() (U, bool) {
				for {
					if active {
						if v, ok := inner.it.Next(); ok {
							return v, true
						}
						active = false
						if err := inner.Close(); err != nil {
							log().Warn().Err(err).Msg("stream: flatMap: closing inner stream failed")
						}
					}
					v, ok := s.it.Next()
					if !ok {
						var zero U
						return zero, false
					}
					inner = fn(v)
					if err := inner.pipe.consume("flatMap"); err != nil {
						panic(err)
					}
					active = true
				}
			},
		},
		pipe: pipe,
	}
}

// Distinct drops elements equal to one already yielded.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return DistinctBy(s, function.Identity[T])
}

// DistinctBy drops elements whose key was already yielded, keeping the
// first occurrence.
func DistinctBy[T any, K comparable](s Stream[T], key func(T) K) Stream[T] {
	if key == nil {
		return s.fail(nullCallback("distinct", "key"))
	}
	seen := make(map[K]struct{})
	return s.derive(func() (T, bool) {
		for {
			v, ok := s.it.Next()
			if !ok {
				return v, false
			}
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			return v, true
		}
	})
}
