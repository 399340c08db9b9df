package comparator

import "strings"

// CaseInsensitiveOrder orders strings lexicographically after folding both
// operands with ToUpper followed by ToLower. It does not take locale into
// account; use NaturalOrder with WithCollateOptions(collate.IgnoreCase) for
// locale-sensitive folding.
//
// Example:
//
//	words := []string{"Alpha", "bravo", "alpha", "charlie", "Bravo"}
//	slices.SortStableFunc(words, comparator.CaseInsensitiveOrder.Compare)
//	// [Alpha alpha bravo Bravo charlie]
var CaseInsensitiveOrder = Of(func(a, b string) int {
	return strings.Compare(fold(a), fold(b))
})

func fold(s string) string {
	return strings.ToLower(strings.ToUpper(s))
}
