// Package optional implements a container for a value that may be absent.
//
// Optional follows Java's semantics: an Optional built with Of always holds a
// non-nil value, Get fails with errs.ErrNoSuchElement on an empty Optional and
// Map turns a nil result into an empty Optional.
//
// Example:
//
//	name := optional.OfNullable(user.Nickname)
//	greeting := optional.Map(name, strings.ToUpper).OrElse("ANONYMOUS")
package optional

import (
	"fmt"

	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/internal/equality"
	"github.com/charmingruby/jutil/internal/typeguard"
)

// Optional holds at most one value of type T. The zero value is empty, so
// Optionals can be embedded safely. Values are stored inline.
type Optional[T any] struct {
	value T
	ok    bool
}

// Empty returns an Optional without a value.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Of wraps value. It panics with errs.ErrNullArgument when value is nil; use
// OfNullable when absence is expected.
func Of[T any](value T) Optional[T] {
	if typeguard.IsNil(any(value)) {
		panic(errs.New(errs.ErrNullArgument, "optional: value must not be nil"))
	}
	return Optional[T]{value: value, ok: true}
}

// OfNullable wraps value, returning an empty Optional when value is nil.
func OfNullable[T any](value T) Optional[T] {
	if typeguard.IsNil(any(value)) {
		return Empty[T]()
	}
	return Optional[T]{value: value, ok: true}
}

// FromOk builds an Optional from Go's comma-ok idiom (map lookups, type
// assertions).
func FromOk[T any](value T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}
	return OfNullable(value)
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// IsEmpty reports whether no value is held.
func (o Optional[T]) IsEmpty() bool {
	return !o.ok
}

// Get returns the held value, or an errs.ErrNoSuchElement error when empty.
func (o Optional[T]) Get() (T, error) {
	if !o.ok {
		var zero T
		return zero, errs.New(errs.ErrNoSuchElement, "optional: no value present")
	}
	return o.value, nil
}

// MustGet returns the held value or panics with errs.ErrNoSuchElement.
func (o Optional[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the held value and whether it was present.
func (o Optional[T]) Lookup() (T, bool) {
	return o.value, o.ok
}

// IfPresent runs action with the held value, if any.
func (o Optional[T]) IfPresent(action func(T)) {
	if !o.ok {
		return
	}
	requireFunc(action, "action")
	action(o.value)
}

// IfPresentOrElse runs action with the held value or emptyAction otherwise.
func (o Optional[T]) IfPresentOrElse(action func(T), emptyAction func()) {
	if o.ok {
		requireFunc(action, "action")
		action(o.value)
		return
	}
	requireFunc(emptyAction, "emptyAction")
	emptyAction()
}

// Filter keeps the value when predicate accepts it.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	requireFunc(predicate, "predicate")
	if o.ok && predicate(o.value) {
		return o
	}
	return Empty[T]()
}

// Or returns o when it holds a value, otherwise the Optional produced by
// supplier.
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if o.ok {
		return o
	}
	requireFunc(supplier, "supplier")
	return supplier()
}

// OrElse returns the held value or other. Only absence triggers the
// fallback: a present zero value such as 0, "" or false is returned as is.
func (o Optional[T]) OrElse(other T) T {
	if o.ok {
		return o.value
	}
	return other
}

// OrElseGet returns the held value or the result of supplier.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.ok {
		return o.value
	}
	requireFunc(supplier, "supplier")
	return supplier()
}

// OrElseThrow returns the held value or the error built by errSupplier. A
// nil errSupplier, or one returning nil, yields errs.ErrNoSuchElement.
func (o Optional[T]) OrElseThrow(errSupplier func() error) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var err error
	if errSupplier != nil {
		err = errSupplier()
	}
	if err == nil {
		err = errs.New(errs.ErrNoSuchElement, "optional: no value present")
	}
	var zero T
	return zero, err
}

// Equals reports whether both Optionals are empty or both hold structurally
// equal values.
func (o Optional[T]) Equals(other Optional[T]) bool {
	if o.ok != other.ok {
		return false
	}
	if !o.ok {
		return true
	}
	return equality.Equal(o.value, other.value)
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Optional[%v]", o.value)
	}
	return "Optional[null]"
}

// Map applies fn to the held value. A nil result becomes an empty Optional.
func Map[T any, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.ok {
		return Empty[U]()
	}
	requireFunc(fn, "mapper")
	return OfNullable(fn(o.value))
}

// FlatMap chains o with an Optional-valued function.
func FlatMap[T any, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.ok {
		return Empty[U]()
	}
	requireFunc(fn, "mapper")
	return fn(o.value)
}

func requireFunc(fn any, name string) {
	if !typeguard.IsFunc(fn) {
		panic(errs.New(errs.ErrNullArgument, "optional: %s must be a function", name))
	}
}
