// Package function provides the small functional vocabulary used around
// streams: identity, composition, predicate algebra and comparator-driven
// reducers.
//
// Example:
//
//	isShort := func(s string) bool { return len(s) < 4 }
//	long := stream.OfSlice(words).Filter(function.Not(isShort))
package function

import (
	"github.com/charmingruby/jutil/comparator"
	"github.com/charmingruby/jutil/internal/equality"
)

// Identity returns the supplied value unchanged.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Compose returns a function applying g first and f to its result.
//
// Example:
//
//	length := Compose(strconv.Itoa, func(s string) int { return len(s) })
func Compose[A any, B any, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// AndThen returns a function applying f first and g to its result.
func AndThen[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose(g, f)
}

// Not negates predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}

// And combines predicates with short-circuiting logical AND. With no
// predicates it accepts everything.
func And[T any](predicates ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates with short-circuiting logical OR. With no
// predicates it rejects everything.
func Or[T any](predicates ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range predicates {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// IsEqual returns a predicate accepting values structurally equal to target.
func IsEqual[T any](target T) func(T) bool {
	return func(v T) bool {
		return equality.Equal(target, v)
	}
}

// MinBy returns a reducer keeping the smaller of two values according to c.
// Ties keep the first value.
func MinBy[T any](c comparator.Comparator[T]) func(T, T) T {
	return func(a, b T) T {
		if c.Compare(a, b) <= 0 {
			return a
		}
		return b
	}
}

// MaxBy returns a reducer keeping the larger of two values according to c.
// Ties keep the first value.
func MaxBy[T any](c comparator.Comparator[T]) func(T, T) T {
	return func(a, b T) T {
		if c.Compare(a, b) >= 0 {
			return a
		}
		return b
	}
}
