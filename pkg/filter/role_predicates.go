package filter

import (
	mmsemver "github.com/Masterminds/semver/v3"
	bsemver "github.com/blang/semver/v4"
	"k8s.io/apimachinery/pkg/util/sets"
)

// RoleCheck returns a predicate reporting whether the key picked by selector
// is one of roles. Order and duplicates in roles do not matter. The allowed
// set is captured when RoleCheck is called.
func RoleCheck[D any, K comparable](selector Key[D, K], roles []K) Predicate[D] {
	allowed := sets.New[K](roles...)
	return func(entity D) bool {
		return allowed.Has(selector(entity))
	}
}

func WithKey[D any, K comparable](selector Key[D, K], want K) Predicate[D] {
	return func(entity D) bool {
		return selector(entity) == want
	}
}

func InBlangSemverRange[D any](selector func(D) *bsemver.Version, semverRange bsemver.Range) Predicate[D] {
	return func(entity D) bool {
		v := selector(entity)
		if v == nil {
			return false
		}
		return semverRange(*v)
	}
}

func InMastermindsSemverRange[D any](selector func(D) *mmsemver.Version, semverRange *mmsemver.Constraints) Predicate[D] {
	return func(entity D) bool {
		v := selector(entity)
		if v == nil {
			return false
		}
		return semverRange.Check(v)
	}
}
