// Package comparator builds and composes total-order functions.
//
// A Comparator is an immutable description of an ordering. Combinators always
// return a new Comparator and failures surface only when two values are
// compared.
//
// Example:
//
//	byName := comparator.Comparing(func(p Person) string { return p.Name })
//	byNameThenAge := comparator.ThenComparingKey(byName, func(p Person) int { return p.Age })
//	slices.SortFunc(people, byNameThenAge.Compare)
package comparator

import (
	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/internal/typeguard"
)

// Comparable is the capability of a value to order itself against another
// value of the same type. CompareTo returns a negative number, zero or a
// positive number as the receiver sorts before, with or after other.
type Comparable[T any] interface {
	CompareTo(other T) int
}

// Comparator orders values of type T. The zero value holds no compare
// function and fails with errs.ErrNullArgument when used.
type Comparator[T any] struct {
	compare func(a, b T) int
}

// Of wraps a raw compare function.
//
// Example:
//
//	byLen := comparator.Of(func(a, b string) int { return len(a) - len(b) })
func Of[T any](fn func(a, b T) int) Comparator[T] {
	return Comparator[T]{compare: fn}
}

// Compare orders a against b. It panics with a Kind-classified error when the
// comparison is not defined; use TryCompare or Sort to receive it as an
// error instead. The method value c.Compare fits slices.SortFunc.
func (c Comparator[T]) Compare(a, b T) int {
	if c.compare == nil {
		panic(errs.New(errs.ErrNullArgument, "comparator: nil compare function"))
	}
	return c.compare(a, b)
}

// TryCompare behaves like Compare but reports failures as errors.
func (c Comparator[T]) TryCompare(a, b T) (n int, err error) {
	defer errs.Recover(&err)
	return c.Compare(a, b), nil
}

// Reversed returns a Comparator with the operand order swapped.
func (c Comparator[T]) Reversed() Comparator[T] {
	return Of(func(a, b T) int {
		return c.Compare(b, a)
	})
}

// ThenComparing returns a Comparator that falls back to other when c
// considers two values equal.
func (c Comparator[T]) ThenComparing(other Comparator[T]) Comparator[T] {
	return Of(func(a, b T) int {
		if n := c.Compare(a, b); n != 0 {
			return n
		}
		return other.Compare(a, b)
	})
}

// Comparing orders values by the natural order of the key extracted from
// each of them.
//
// Example:
//
//	byAge := comparator.Comparing(func(p Person) int { return p.Age })
func Comparing[T any, U any](key func(T) U) Comparator[T] {
	return ComparingWith(key, NaturalOrder[U]())
}

// ComparingWith orders values by the extracted key using keyCmp.
func ComparingWith[T any, U any](key func(T) U, keyCmp Comparator[U]) Comparator[T] {
	return Of(func(a, b T) int {
		if key == nil {
			panic(errs.New(errs.ErrNullArgument, "comparator: nil key extractor"))
		}
		return keyCmp.Compare(key(a), key(b))
	})
}

// ThenComparingKey chains c with a natural-order comparison on key.
func ThenComparingKey[T any, U any](c Comparator[T], key func(T) U) Comparator[T] {
	return c.ThenComparing(Comparing(key))
}

// ThenComparingKeyWith chains c with a comparison on key using keyCmp.
func ThenComparingKeyWith[T any, U any](c Comparator[T], key func(T) U, keyCmp Comparator[U]) Comparator[T] {
	return c.ThenComparing(ComparingWith(key, keyCmp))
}

// NullsFirst orders nil before every non-nil value. Two nils are equal and
// non-nil values are delegated to c.
func NullsFirst[T any](c Comparator[T]) Comparator[T] {
	return nullAware(c, -1)
}

// NullsLast orders nil after every non-nil value. Two nils are equal and
// non-nil values are delegated to c.
func NullsLast[T any](c Comparator[T]) Comparator[T] {
	return nullAware(c, 1)
}

func nullAware[T any](c Comparator[T], nilRank int) Comparator[T] {
	return Of(func(a, b T) int {
		aNil, bNil := typeguard.IsNil(any(a)), typeguard.IsNil(any(b))
		switch {
		case aNil && bNil:
			return 0
		case aNil:
			return nilRank
		case bNil:
			return -nilRank
		}
		return c.Compare(a, b)
	})
}
