package ast

import "iter"

// Arena-backed syntax tree of one test suite. Nodes reference each other by
// index, so the parent/children graph has no pointer cycles.

type NodeID int

// NoNode marks an absent parent or target.
const NoNode NodeID = -1

type Kind uint8

const (
	KindInvocation Kind = iota + 1
	KindDefinition
	KindTarget
)

type LiteralKind uint8

const (
	LitString LiteralKind = iota + 1
	LitInt
	LitFloat
	LitBool
	LitNull
	LitOther
)

// Literal is an invocation argument. Text is the literal's source text.
type Literal struct {
	Kind LiteralKind
	Text string
}

func (l Literal) IsString() bool { return l.Kind == LitString }

type Node struct {
	Kind      Kind
	ClassName string
	Name      string
	Parent    NodeID
	Children  []NodeID

	// Invocation only
	Target NodeID
	Args   []Literal

	// Definition only
	ParamTypes []string
}

type Tree struct {
	className string
	nodes     []Node
	roots     []NodeID
}

func (t *Tree) ClassName() string { return t.className }

func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) Roots() []NodeID { return t.roots }

// Valid reports whether id addresses a node in the tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Node returns the node at id. The second result is false for NoNode or an
// out-of-range id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.Valid(id) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Text returns the string form of a node: the receiver text for targets and
// the name for everything else.
func (t *Tree) Text(id NodeID) string {
	n, ok := t.Node(id)
	if !ok {
		return ""
	}
	return n.Name
}

// Preorder yields every invocation and definition node in source order.
// Target nodes are not visited.
func (t *Tree) Preorder() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		var walk func(id NodeID) bool
		walk = func(id NodeID) bool {
			if !yield(id) {
				return false
			}
			for _, c := range t.nodes[id].Children {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		for _, r := range t.roots {
			if !walk(r) {
				return
			}
		}
	}
}
