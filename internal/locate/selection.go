package locate

import "github.com/chriserin/tloc/internal/ast"

// Selection describes what running one tree location means: a single test
// for a leaf, or every leaf under it for a group.
type Selection struct {
	ClassName   string
	DisplayName string
	TestNames   []string // deduplicated, first occurrence wins
}

func newSelection(className, displayName string, testNames ...string) Selection {
	return Selection{
		ClassName:   className,
		DisplayName: displayName,
		TestNames:   dedupe(testNames),
	}
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Resolver interprets the tree shapes of one authoring style. Resolve
// accepts any node and reports false when the node is not a test or group
// in that style; it never fails.
type Resolver interface {
	Resolve(t *ast.Tree, id ast.NodeID) (Selection, bool)
}

// ResolveAll probes every node of t in preorder and collects the matches.
func ResolveAll(r Resolver, t *ast.Tree) []Selection {
	var out []Selection
	for id := range t.Preorder() {
		if sel, ok := r.Resolve(t, id); ok {
			out = append(out, sel)
		}
	}
	return out
}

// invocation returns the node at id if it is a method invocation named one
// of names.
func invocation(t *ast.Tree, id ast.NodeID, names ...string) (ast.Node, bool) {
	n, ok := t.Node(id)
	if !ok || n.Kind != ast.KindInvocation {
		return ast.Node{}, false
	}
	for _, name := range names {
		if n.Name == name {
			return n, true
		}
	}
	return ast.Node{}, false
}

// stringArg returns the text of the sole argument when it is a string literal.
func stringArg(n ast.Node) (string, bool) {
	if len(n.Args) != 1 || !n.Args[0].IsString() {
		return "", false
	}
	return n.Args[0].Text, true
}
