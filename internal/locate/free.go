package locate

import (
	"strings"

	"github.com/chriserin/tloc/internal/ast"
)

const groupMarker = "-"

var leafMarkers = []string{"in", "is"}

// FreeResolver recognizes free-form nesting: "A stack" - { "pops" in { ... } }.
// Names are the receiver texts of the enclosing invocations joined by a
// single space, outermost first.
type FreeResolver struct{}

func (FreeResolver) Resolve(t *ast.Tree, id ast.NodeID) (Selection, bool) {
	if n, ok := invocation(t, id, leafMarkers...); ok {
		if !t.Valid(n.Target) {
			return Selection{}, false
		}
		name := composedName(t, id)
		return newSelection(n.ClassName, name, name), true
	}

	n, ok := invocation(t, id, groupMarker)
	if !ok || !t.Valid(n.Target) {
		return Selection{}, false
	}
	var names []string
	collectLeaves(t, n, &names)
	if len(names) == 0 {
		return Selection{}, false
	}
	return newSelection(n.ClassName, composedName(t, id), names...), true
}

// composedName walks up through invocation ancestors, stopping at the root
// or at the first parent that is not an invocation.
func composedName(t *ast.Tree, id ast.NodeID) string {
	var segments []string
	for {
		n, ok := t.Node(id)
		if !ok || n.Kind != ast.KindInvocation {
			break
		}
		if t.Valid(n.Target) {
			segments = append(segments, t.Text(n.Target))
		}
		id = n.Parent
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, " ")
}

func collectLeaves(t *ast.Tree, group ast.Node, names *[]string) {
	for _, c := range group.Children {
		if leaf, ok := invocation(t, c, leafMarkers...); ok {
			if t.Valid(leaf.Target) {
				*names = append(*names, composedName(t, c))
			}
			continue
		}
		if sub, ok := invocation(t, c, groupMarker); ok {
			collectLeaves(t, sub, names)
		}
	}
}
