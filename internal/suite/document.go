package suite

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chriserin/tloc/internal/ast"
	"github.com/chriserin/tloc/internal/style"
)

// Document is a decoded tree file: type metadata plus one tree per suite.
type Document struct {
	Types  map[string]*style.Type
	Suites []Suite
}

type Suite struct {
	Type *style.Type
	Tree *ast.Tree
}

type rawDocument struct {
	Types  []rawType  `yaml:"types"`
	Suites []rawSuite `yaml:"suites"`
}

type rawType struct {
	Name       string   `yaml:"name"`
	Style      string   `yaml:"style"`
	Interface  bool     `yaml:"interface"`
	Extends    string   `yaml:"extends"`
	Implements []string `yaml:"implements"`
}

type rawSuite struct {
	Class string    `yaml:"class"`
	Nodes []rawNode `yaml:"nodes"`
}

type rawNode struct {
	Invoke   string      `yaml:"invoke"`
	Define   string      `yaml:"define"`
	Target   *string     `yaml:"target"`
	Args     []yaml.Node `yaml:"args"`
	Params   []string    `yaml:"params"`
	Children []rawNode   `yaml:"children"`
}

// Load reads and decodes the tree file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a YAML (or JSON) tree document. Type names referenced but
// not declared fall back to the built-in catalog, then to types without
// style metadata.
func Decode(r io.Reader) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, err
	}

	types, err := linkTypes(raw.Types)
	if err != nil {
		return nil, err
	}
	doc := &Document{Types: types}

	for i, rs := range raw.Suites {
		if rs.Class == "" {
			return nil, fmt.Errorf("suite %d: class is required", i+1)
		}
		shapes, err := toShapes(rs.Nodes)
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", rs.Class, err)
		}
		tree, err := ast.Build(rs.Class, shapes...)
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", rs.Class, err)
		}
		doc.Suites = append(doc.Suites, Suite{Type: typeRef(types, rs.Class), Tree: tree})
	}
	return doc, nil
}

func linkTypes(raws []rawType) (map[string]*style.Type, error) {
	types := style.Catalog()
	declared := map[string]bool{}
	for _, rt := range raws {
		if rt.Name == "" {
			return nil, fmt.Errorf("type without name")
		}
		if declared[rt.Name] {
			return nil, fmt.Errorf("type %s declared twice", rt.Name)
		}
		declared[rt.Name] = true
		types[rt.Name] = &style.Type{
			Name:      rt.Name,
			Style:     style.Style(rt.Style),
			Interface: rt.Interface,
		}
	}
	for _, rt := range raws {
		t := types[rt.Name]
		if rt.Extends != "" {
			t.Extends = typeRef(types, rt.Extends)
		}
		for _, name := range rt.Implements {
			t.Implements = append(t.Implements, typeRef(types, name))
		}
	}
	return types, nil
}

func typeRef(types map[string]*style.Type, name string) *style.Type {
	if t, ok := types[name]; ok {
		return t
	}
	t := &style.Type{Name: name}
	types[name] = t
	return t
}

func toShapes(nodes []rawNode) ([]ast.Shape, error) {
	var shapes []ast.Shape
	for _, n := range nodes {
		s, err := toShape(n)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func toShape(n rawNode) (ast.Shape, error) {
	var s ast.Shape
	switch {
	case n.Invoke != "" && n.Define != "":
		return s, fmt.Errorf("node %q: invoke and define are exclusive", n.Invoke)
	case n.Invoke != "":
		var args []ast.Literal
		for _, a := range n.Args {
			args = append(args, literal(a))
		}
		s = ast.Invoke(n.Invoke, args...)
		if n.Target != nil {
			s = s.On(*n.Target)
		}
	case n.Define != "":
		if n.Target != nil || len(n.Args) > 0 {
			return s, fmt.Errorf("definition %q: target and args apply to invocations only", n.Define)
		}
		s = ast.Define(n.Define, n.Params...)
	default:
		return s, fmt.Errorf("node needs invoke or define")
	}

	children, err := toShapes(n.Children)
	if err != nil {
		return s, err
	}
	return s.With(children...), nil
}

// literal keeps the YAML tag as the literal kind, so "42" stays a string.
func literal(n yaml.Node) ast.Literal {
	if n.Kind != yaml.ScalarNode {
		return ast.Literal{Kind: ast.LitOther}
	}
	kind := ast.LitOther
	switch n.ShortTag() {
	case "!!str":
		kind = ast.LitString
	case "!!int":
		kind = ast.LitInt
	case "!!float":
		kind = ast.LitFloat
	case "!!bool":
		kind = ast.LitBool
	case "!!null":
		kind = ast.LitNull
	}
	return ast.Literal{Kind: kind, Text: n.Value}
}
