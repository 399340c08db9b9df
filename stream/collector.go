package stream

import (
	"strings"

	"github.com/charmingruby/jutil/errs"
	"github.com/charmingruby/jutil/internal/typeguard"
)

// Collector describes a mutable reduction: Supplier creates the container,
// Accumulator folds each element into it and Finisher produces the result.
type Collector[T any, A any, R any] struct {
	Supplier    func() A
	Accumulator func(A, T) A
	Finisher    func(A) R
}

func requireCallback[F any](fn F, op, name string) {
	if typeguard.IsNil(fn) {
		panic(nullCallback(op, name))
	}
}

func identityFinisher[A any](a A) A { return a }

// ToList collects elements into a slice in encounter order.
func ToList[T any]() Collector[T, []T, []T] {
	return Collector[T, []T, []T]{
		Supplier:    func() []T { return []T{} },
		Accumulator: func(acc []T, v T) []T { return append(acc, v) },
		Finisher:    identityFinisher[[]T],
	}
}

// Joining concatenates strings separated by sep.
func Joining(sep string) Collector[string, *strings.Builder, string] {
	return JoiningWith(sep, "", "")
}

// JoiningWith concatenates strings separated by sep and wrapped in prefix
// and suffix.
func JoiningWith(sep, prefix, suffix string) Collector[string, *strings.Builder, string] {
	first := true
	return Collector[string, *strings.Builder, string]{
		Supplier: func() *strings.Builder {
			first = true
			b := &strings.Builder{}
			b.WriteString(prefix)
			return b
		},
		Accumulator: func(b *strings.Builder, v string) *strings.Builder {
			if !first {
				b.WriteString(sep)
			}
			first = false
			b.WriteString(v)
			return b
		},
		Finisher: func(b *strings.Builder) string {
			b.WriteString(suffix)
			return b.String()
		},
	}
}

// GroupingBy groups elements by key, keeping encounter order within groups.
func GroupingBy[T any, K comparable](key func(T) K) Collector[T, map[K][]T, map[K][]T] {
	return Collector[T, map[K][]T, map[K][]T]{
		Supplier: func() map[K][]T {
			requireCallback(key, "groupingBy", "key")
			return make(map[K][]T)
		},
		Accumulator: func(groups map[K][]T, v T) map[K][]T {
			k := key(v)
			groups[k] = append(groups[k], v)
			return groups
		},
		Finisher: identityFinisher[map[K][]T],
	}
}

// PartitioningBy splits elements by predicate. Both the true and the false
// partition are always present in the result.
func PartitioningBy[T any](predicate func(T) bool) Collector[T, map[bool][]T, map[bool][]T] {
	return Collector[T, map[bool][]T, map[bool][]T]{
		Supplier: func() map[bool][]T {
			requireCallback(predicate, "partitioningBy", "predicate")
			return map[bool][]T{true: {}, false: {}}
		},
		Accumulator: func(parts map[bool][]T, v T) map[bool][]T {
			match := predicate(v)
			parts[match] = append(parts[match], v)
			return parts
		},
		Finisher: identityFinisher[map[bool][]T],
	}
}

// Counting counts the elements.
func Counting[T any]() Collector[T, int, int] {
	return Collector[T, int, int]{
		Supplier:    func() int { return 0 },
		Accumulator: func(n int, _ T) int { return n + 1 },
		Finisher:    identityFinisher[int],
	}
}

// ToMap builds a map from key and value extractors. Two elements mapping to
// the same key fail the collection with errs.ErrIllegalState.
func ToMap[T any, K comparable, V any](key func(T) K, value func(T) V) Collector[T, map[K]V, map[K]V] {
	return Collector[T, map[K]V, map[K]V]{
		Supplier: func() map[K]V {
			requireCallback(key, "toMap", "key")
			requireCallback(value, "toMap", "value")
			return make(map[K]V)
		},
		Accumulator: func(m map[K]V, v T) map[K]V {
			k := key(v)
			if _, dup := m[k]; dup {
				panic(errs.New(errs.ErrIllegalState, "stream: toMap: duplicate key %v", k))
			}
			m[k] = value(v)
			return m
		},
		Finisher: identityFinisher[map[K]V],
	}
}
