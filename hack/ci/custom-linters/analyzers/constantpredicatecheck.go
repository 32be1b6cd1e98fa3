package analyzers

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/types/typeutil"
)

const filterPkgPath = "github.com/operator-framework/predicates/pkg/filter"

// identities holds the fixed result of each combinator called with no predicates.
var identities = map[string]bool{
	"And": true,
	"Or":  false,
	"Not": true,
}

var ConstantPredicateCheck = &analysis.Analyzer{
	Name: "constantpredicatecheck",
	Doc: "Detects filter combinators and role checks whose result is fixed when they are built, " +
		"which usually means a predicate list or role list was lost.",
	Run: runConstantPredicateCheck,
}

func runConstantPredicateCheck(pass *analysis.Pass) (interface{}, error) {
	for _, f := range pass.Files {
		ast.Inspect(f, func(n ast.Node) bool {
			callExpr, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			fn, ok := typeutil.Callee(pass.TypesInfo, callExpr).(*types.Func)
			if !ok || fn.Pkg() == nil || fn.Pkg().Path() != filterPkgPath {
				return true
			}

			var srcBuffer bytes.Buffer
			if err := format.Node(&srcBuffer, pass.Fset, callExpr); err != nil {
				return true
			}
			sourceLine := srcBuffer.String()

			if identity, ok := identities[fn.Name()]; ok {
				// A spread slice may be non-empty at run time.
				if len(callExpr.Args) == 0 && !callExpr.Ellipsis.IsValid() {
					pass.Reportf(callExpr.Pos(),
						"'filter.%s()' has no predicates and always returns %t.\n\n"+
							"\U0001F41B **What is wrong?**\n   %s\n\n"+
							"\U0001F4A1 **How to solve?**\n   Pass the predicates to compose, or use a literal func that returns %t\n\n",
						fn.Name(), identity, sourceLine, identity)
				}
				return true
			}

			if fn.Name() == "RoleCheck" && len(callExpr.Args) == 2 && isEmptySlice(pass, callExpr.Args[1]) {
				pass.Reportf(callExpr.Pos(),
					"'filter.RoleCheck' has no allowed roles and always returns false.\n\n"+
						"\U0001F41B **What is wrong?**\n   %s\n\n"+
						"\U0001F4A1 **How to solve?**\n   Provide the allowed roles, e.g. filter.RoleCheck(selector, []Role{RoleEditor})\n\n",
					sourceLine)
			}
			return true
		})
	}
	return nil, nil
}

func isEmptySlice(pass *analysis.Pass, expr ast.Expr) bool {
	switch e := astutil.Unparen(expr).(type) {
	case *ast.Ident:
		_, isNil := pass.TypesInfo.ObjectOf(e).(*types.Nil)
		return isNil
	case *ast.CompositeLit:
		return len(e.Elts) == 0
	}
	return false
}
