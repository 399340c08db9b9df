package stream

import (
	"golang.org/x/exp/constraints"
)

// Generate returns an infinite stream of values produced by supplier. Bound
// it with Limit or TakeWhile.
func Generate[T any](supplier func() T) Stream[T] {
	if supplier == nil {
		return OfIterator(failing[T](nullCallback("generate", "supplier")))
	}
	return OfIterator(IteratorFunc(func() (T, bool) {
		return supplier(), true
	}))
}

// Iterate returns the infinite stream seed, next(seed), next(next(seed)), ...
func Iterate[T any](seed T, next func(T) T) Stream[T] {
	return IterateWhile(seed, func(T) bool { return true }, next)
}

// IterateWhile is Iterate stopping before the first value rejected by
// hasNext.
func IterateWhile[T any](seed T, hasNext func(T) bool, next func(T) T) Stream[T] {
	if hasNext == nil || next == nil {
		return OfIterator(failing[T](nullCallback("iterate", "hasNext and next")))
	}
	current := seed
	started, done := false, false
	return OfIterator(IteratorFunc(func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		if started {
			current = next(current)
		}
		started = true
		if !hasNext(current) {
			done = true
			return zero, false
		}
		return current, true
	}))
}

// Range returns the integers in [start, end) in ascending order.
func Range[T constraints.Integer](start, end T) Stream[T] {
	current := start
	return OfIterator(IteratorFunc(func() (T, bool) {
		if current >= end {
			var zero T
			return zero, false
		}
		v := current
		current++
		return v, true
	}))
}

// RangeClosed returns the integers in [start, end] in ascending order.
func RangeClosed[T constraints.Integer](start, end T) Stream[T] {
	current := start
	done := start > end
	return OfIterator(IteratorFunc(func() (T, bool) {
		if done {
			var zero T
			return zero, false
		}
		v := current
		if current == end {
			done = true
		} else {
			current++
		}
		return v, true
	}))
}
