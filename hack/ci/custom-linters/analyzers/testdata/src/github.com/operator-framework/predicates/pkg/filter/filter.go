package filter

type Predicate[T any] func(entity T) bool

type Key[T any, K comparable] func(entity T) K

func And[T any](predicates ...Predicate[T]) Predicate[T] { return nil }

func Or[T any](predicates ...Predicate[T]) Predicate[T] { return nil }

func Not[T any](predicates ...Predicate[T]) Predicate[T] { return nil }

func RoleCheck[D any, K comparable](selector Key[D, K], roles []K) Predicate[D] { return nil }
