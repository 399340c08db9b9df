package stream

import (
	"iter"
	"slices"
)

// Iterator pulls values one at a time. Every Stream stage is an Iterator
// wrapping the stage before it. The zero value is exhausted.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value, or the zero value and false once exhausted.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// All adapts the iterator to a range-over-func sequence. Ranging pulls from
// the iterator itself, so values consumed by the loop are gone from it.
//
// Example:
//
//	for v := range it.All() {
//		fmt.Println(v)
//	}
func (it Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// IteratorFunc adapts a pull function into an Iterator. The first false from
// next ends the iterator: next is not called again and later pulls report
// exhaustion with the zero value.
func IteratorFunc[T any](next func() (T, bool)) Iterator[T] {
	if next == nil {
		return Iterator[T]{}
	}
	done := false
	return Iterator[T]{
		next: func() (T, bool) {
			var zero T
			if done {
				return zero, false
			}
			v, ok := next()
			if !ok {
				done = true
				return zero, false
			}
			return v, true
		},
	}
}

// FromSlice pulls the elements of values in order. The slice is not copied,
// so writes to it before a pull are observed.
func FromSlice[T any](values []T) Iterator[T] {
	rest := values
	return Iterator[T]{
		next: func() (T, bool) {
			if len(rest) == 0 {
				var zero T
				return zero, false
			}
			v := rest[0]
			rest = rest[1:]
			return v, true
		},
	}
}

// Drain pulls every remaining value into a new slice, which is empty rather
// than nil for an exhausted iterator.
func Drain[T any](it Iterator[T]) []T {
	return slices.AppendSeq([]T{}, it.All())
}

// failing returns an iterator whose first pull panics with err. Terminal
// operations turn that panic back into their returned error.
func failing[T any](err error) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			panic(err)
		},
	}
}
