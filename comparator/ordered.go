package comparator

import "golang.org/x/exp/constraints"

// Ordered returns the ordering of Go's < operator on T. Unlike NaturalOrder it
// needs no reflection and strings compare byte-wise.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return Of(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}
