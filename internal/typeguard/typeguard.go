// Package typeguard classifies runtime values for natural ordering and
// nil handling.
package typeguard

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeFor[time.Time]()

// IsNil reports whether v is a nil interface or a nil pointer, map, slice,
// func, channel or interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsPresent is the negation of IsNil.
func IsPresent(v any) bool {
	return !IsNil(v)
}

// SameType reports whether a and b have the same dynamic type.
func SameType(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// IsString reports whether v has a string kind, named string types included.
func IsString(v any) bool {
	return kindOf(v) == reflect.String
}

// IsInteger reports signed integer kinds.
func IsInteger(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports unsigned integer kinds.
func IsUnsigned(v any) bool {
	switch kindOf(v) {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsFloat reports floating point kinds.
func IsFloat(v any) bool {
	switch kindOf(v) {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsNumber reports any integer, unsigned or floating point kind.
func IsNumber(v any) bool {
	return IsInteger(v) || IsUnsigned(v) || IsFloat(v)
}

// IsBool reports a bool kind.
func IsBool(v any) bool {
	return kindOf(v) == reflect.Bool
}

// IsTime reports a time.Time value.
func IsTime(v any) bool {
	return v != nil && reflect.TypeOf(v) == timeType
}

// IsFunc reports a non-nil function value.
func IsFunc(v any) bool {
	return kindOf(v) == reflect.Func && !IsNil(v)
}

// CompareToMethod returns v's CompareTo method when it accepts other and
// returns an integer.
func CompareToMethod(v, other any) (reflect.Value, bool) {
	if v == nil || other == nil {
		return reflect.Value{}, false
	}
	m := reflect.ValueOf(v).MethodByName("CompareTo")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.IsVariadic() {
		return reflect.Value{}, false
	}
	if !reflect.TypeOf(other).AssignableTo(mt.In(0)) {
		return reflect.Value{}, false
	}
	switch mt.Out(0).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return m, true
	default:
		return reflect.Value{}, false
	}
}

// IsComparable reports whether v exposes a CompareTo method accepting a value
// of its own type.
func IsComparable(v any) bool {
	_, ok := CompareToMethod(v, v)
	return ok
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}
