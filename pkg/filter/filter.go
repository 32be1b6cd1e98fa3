package filter

import "slices"

// Filter creates a new slice with all elements from s for which the test returns true
func Filter[T any](s []T, test Predicate[T]) []T {
	var out []T
	for i := 0; i < len(s); i++ {
		if test(s[i]) {
			out = append(out, s[i])
		}
	}
	return slices.Clip(out)
}

// FilterIndexed is Filter for predicates that need the element's index.
func FilterIndexed[T any](s []T, test IndexedPredicate[T]) []T {
	var out []T
	for i := 0; i < len(s); i++ {
		if test(s[i], i) {
			out = append(out, s[i])
		}
	}
	return slices.Clip(out)
}

// InPlace modifies s by removing any element for which test returns false.
// InPlace zeroes the elements between the new length and the original length in s.
// The returned slice is of the new length.
func InPlace[T any](s []T, test Predicate[T]) []T {
	return slices.DeleteFunc(s, Not(test))
}

// GroupBy buckets the elements of s by key. Each bucket keeps the order of s.
func GroupBy[T any, K comparable](s []T, key Key[T, K]) map[K][]T {
	out := map[K][]T{}
	for _, value := range s {
		k := key(value)
		out[k] = append(out[k], value)
	}
	return out
}

// Map returns a slice holding mapper applied to every element of s.
func Map[S, V any](s []S, mapper MapFn[S, V]) []V {
	out := make([]V, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = mapper(s[i])
	}
	return out
}
