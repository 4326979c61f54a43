package locate

import "github.com/chriserin/tloc/internal/ast"

// FunctionResolver recognizes function-style suites, where every
// test("name") { ... } invocation is one test.
type FunctionResolver struct{}

func (FunctionResolver) Resolve(t *ast.Tree, id ast.NodeID) (Selection, bool) {
	n, ok := invocation(t, id, "test")
	if !ok {
		return Selection{}, false
	}
	name, ok := stringArg(n)
	if !ok {
		return Selection{}, false
	}
	return newSelection(n.ClassName, n.ClassName+`: "`+name+`"`, name), true
}
