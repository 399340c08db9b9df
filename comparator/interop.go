package comparator

import (
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"

	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/internal/typeguard"
)

// Less adapts c to the less function expected by btree.NewG.
//
// Example:
//
//	tree := btree.NewG(32, comparator.Comparing(func(u User) string { return u.Email }).Less())
func (c Comparator[T]) Less() btree.LessFunc[T] {
	return func(a, b T) bool {
		return c.Compare(a, b) < 0
	}
}

// Untyped adapts c to the interface{}-based comparator used by gods
// containers such as treemap and treeset. Operands that are not of type T
// fail with errs.ErrTypeMismatch; nil fails with errs.ErrNullArgument unless
// T itself can be nil.
func (c Comparator[T]) Untyped() utils.Comparator {
	return func(a, b interface{}) int {
		return c.Compare(assertAs[T](a), assertAs[T](b))
	}
}

func assertAs[T any](v any) T {
	if v == nil {
		var zero T
		if !typeguard.IsNil(any(zero)) {
			panic(errs.New(errs.ErrNullArgument, "comparator: nil is not a %T", zero))
		}
		return zero
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		panic(errs.New(errs.ErrTypeMismatch, "comparator: %T is not %T", v, zero))
	}
	return t
}
