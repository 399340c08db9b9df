package comparator

import (
	"slices"

	"github.com/charmingruby/jutil/errs"
)

// Sort sorts s in place with c. A comparison failure aborts the sort and is
// returned; s is then left partially reordered.
func Sort[T any](s []T, c Comparator[T]) (err error) {
	defer errs.Recover(&err)
	slices.SortFunc(s, c.Compare)
	return nil
}

// SortStable is Sort keeping the original order of equal elements.
func SortStable[T any](s []T, c Comparator[T]) (err error) {
	defer errs.Recover(&err)
	slices.SortStableFunc(s, c.Compare)
	return nil
}

// Sorted returns a sorted copy of s, leaving s untouched.
func Sorted[T any](s []T, c Comparator[T]) ([]T, error) {
	out := slices.Clone(s)
	if err := SortStable(out, c); err != nil {
		return nil, err
	}
	return out, nil
}
