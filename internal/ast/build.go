package ast

import (
	"errors"
	"strconv"
)

var ErrNoClassName = errors.New("class name is required")

// Shape is a nested description of a node, flattened into a Tree by Build.
type Shape struct {
	Kind     Kind
	Name     string
	Receiver *string
	Args     []Literal
	Params   []string
	Children []Shape
}

func Invoke(name string, args ...Literal) Shape {
	return Shape{Kind: KindInvocation, Name: name, Args: args}
}

func Define(name string, params ...string) Shape {
	return Shape{Kind: KindDefinition, Name: name, Params: params}
}

// On sets the receiver of an invocation, e.g. "A stack" in `"A stack" - {...}`.
func (s Shape) On(receiver string) Shape {
	s.Receiver = &receiver
	return s
}

func (s Shape) With(children ...Shape) Shape {
	s.Children = append(append([]Shape(nil), s.Children...), children...)
	return s
}

func String(s string) Literal { return Literal{Kind: LitString, Text: s} }

func Int(i int64) Literal { return Literal{Kind: LitInt, Text: strconv.FormatInt(i, 10)} }

func Float(f float64) Literal {
	return Literal{Kind: LitFloat, Text: strconv.FormatFloat(f, 'g', -1, 64)}
}

func Bool(b bool) Literal { return Literal{Kind: LitBool, Text: strconv.FormatBool(b)} }

// Build flattens roots into an immutable Tree owned by className. Parent
// indices are assigned here and never change afterwards.
func Build(className string, roots ...Shape) (*Tree, error) {
	if className == "" {
		return nil, ErrNoClassName
	}
	t := &Tree{className: className}
	for _, r := range roots {
		t.roots = append(t.roots, t.add(r, NoNode))
	}
	return t, nil
}

func (t *Tree) add(s Shape, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Kind:      s.Kind,
		ClassName: t.className,
		Name:      s.Name,
		Parent:    parent,
		Target:    NoNode,
	})

	switch s.Kind {
	case KindInvocation:
		t.nodes[id].Args = append([]Literal(nil), s.Args...)
		if s.Receiver != nil {
			target := NodeID(len(t.nodes))
			t.nodes = append(t.nodes, Node{
				Kind:      KindTarget,
				ClassName: t.className,
				Name:      *s.Receiver,
				Parent:    id,
				Target:    NoNode,
			})
			t.nodes[id].Target = target
		}
	case KindDefinition:
		t.nodes[id].ParamTypes = append([]string(nil), s.Params...)
	}

	var children []NodeID
	for _, c := range s.Children {
		children = append(children, t.add(c, id))
	}
	t.nodes[id].Children = children
	return id
}
