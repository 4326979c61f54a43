package locate

import "github.com/chriserin/tloc/internal/ast"

// MethodResolver treats every zero-parameter method definition as a test.
type MethodResolver struct{}

func (MethodResolver) Resolve(t *ast.Tree, id ast.NodeID) (Selection, bool) {
	n, ok := t.Node(id)
	if !ok || n.Kind != ast.KindDefinition || len(n.ParamTypes) > 0 {
		return Selection{}, false
	}
	return newSelection(n.ClassName, n.ClassName+"."+n.Name, n.Name), true
}
