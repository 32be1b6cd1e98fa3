package a

import (
	"github.com/operator-framework/predicates/pkg/filter"
)

type user struct {
	role string
}

func userRole(u user) string { return u.role }

func testPredicates(preds []filter.Predicate[user], roles []string) {
	isPositive := func(i int) bool { return i > 0 }

	// Case 1: Combinators without predicates have a fixed result.
	_ = filter.And[int]() // want ".*always returns true.*"
	_ = filter.Or[int]()  // want ".*always returns false.*"
	_ = filter.Not[int]() // want ".*always returns true.*"

	// Case 2: Role checks without roles never match.
	_ = filter.RoleCheck(userRole, nil)        // want ".*no allowed roles and always returns false.*"
	_ = filter.RoleCheck(userRole, []string{}) // want ".*no allowed roles and always returns false.*"

	// Case 3: Correct Usage - Should not trigger any warnings.
	_ = filter.Or(isPositive)
	_ = filter.And(preds...)
	_ = filter.Not(preds...)
	_ = filter.RoleCheck(userRole, roles)
	_ = filter.RoleCheck(userRole, []string{"EDITOR"})
}
