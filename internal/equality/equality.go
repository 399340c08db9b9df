// Package equality implements the recursive structural equality used by
// Optional.Equals and function.IsEqual.
//
// Values are equal when they have the same dynamic type and:
//   - time.Time values denote the same instant,
//   - maps hold equal values under the same keys, in any order,
//   - slices and arrays hold equal elements in the same order,
//   - structs have equal fields, unexported ones included,
//   - functions are the same function value (or both nil),
//   - everything else compares with ==.
//
// Cyclic structures are supported.
package equality

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var options = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.FilterValues(bothFuncs, cmp.Comparer(sameFunc)),
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, options...)
}

func bothFuncs(a, b any) bool {
	return isFunc(a) && isFunc(b)
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

func sameFunc(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	if av.IsNil() || bv.IsNil() {
		return av.IsNil() && bv.IsNil()
	}
	return av.Pointer() == bv.Pointer()
}
