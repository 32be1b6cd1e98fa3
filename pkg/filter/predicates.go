// Package filter composes unary predicates and builds predicates from field
// selectors.
package filter

import "slices"

// Predicate returns true if the object should be kept when filtering
type Predicate[T any] func(entity T) bool

// IndexedPredicate is a Predicate that also receives the position of the
// entity within the sequence being filtered.
type IndexedPredicate[T any] func(entity T, index int) bool

// Key selects a comparable value from an entity.
type Key[T any, K comparable] func(entity T) K

type MapFn[S any, V any] func(S) V

// And returns a predicate that is true when every predicate is true.
// Evaluation stops at the first false predicate.
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	predicates = slices.Clone(predicates)
	return func(obj T) bool {
		for _, predicate := range predicates {
			if !predicate(obj) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that is true when any predicate is true.
// Evaluation stops at the first true predicate.
func Or[T any](predicates ...Predicate[T]) Predicate[T] {
	predicates = slices.Clone(predicates)
	return func(obj T) bool {
		for _, predicate := range predicates {
			if predicate(obj) {
				return true
			}
		}
		return false
	}
}

// Not returns a predicate that is true only when every predicate is false.
// It is the conjunction of the negated predicates, so evaluation stops at the
// first true predicate.
func Not[T any](predicates ...Predicate[T]) Predicate[T] {
	predicates = slices.Clone(predicates)
	return func(obj T) bool {
		for _, predicate := range predicates {
			if predicate(obj) {
				return false
			}
		}
		return true
	}
}

// WithIndex adapts p to the indexed calling convention. The index is ignored.
func WithIndex[T any](p Predicate[T]) IndexedPredicate[T] {
	return func(obj T, _ int) bool {
		return p(obj)
	}
}
