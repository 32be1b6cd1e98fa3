package filter

import "github.com/go-logr/logr"

// Traced wraps p so that every evaluation is logged at V(1) under name.
// The result of p is returned unchanged.
func Traced[T any](log logr.Logger, name string, p Predicate[T]) Predicate[T] {
	log = log.WithValues("predicate", name)
	return func(obj T) bool {
		result := p(obj)
		log.V(1).Info("evaluated predicate", "result", result)
		return result
	}
}
