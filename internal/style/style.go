package style

import "fmt"

// Style names an authoring convention for test suites.
type Style string

const (
	Function Style = "function"
	Feature  Style = "feature"
	Free     Style = "free"
	Method   Style = "method"
)

var All = []Style{Function, Feature, Free, Method}

func Parse(s string) (Style, error) {
	for _, st := range All {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", s)
}

// Type is the runtime metadata of a suite type: its own style annotation,
// the capability sets it implements and the class it extends. Interface
// marks capability sets, whose parents are listed in Implements.
type Type struct {
	Name       string
	Style      Style
	Interface  bool
	Implements []*Type
	Extends    *Type
}

// Lookup finds the style declared for t. Capability sets are searched
// breadth-first in declaration order before the class chain; on the class
// chain each class's own annotation is checked before its capability sets.
// A capability set already searched is skipped, but the class chain still
// continues through it.
func Lookup(t *Type) (Style, bool) {
	if t == nil {
		return "", false
	}
	visited := map[*Type]bool{}
	if s, ok := searchInterfaces(t, visited); ok {
		return s, true
	}
	chain := map[*Type]bool{}
	for c := t; c != nil && !chain[c]; c = c.Extends {
		chain[c] = true
		if c.Style != "" {
			return c.Style, true
		}
		if s, ok := searchInterfaces(c, visited); ok {
			return s, true
		}
	}
	return "", false
}

func searchInterfaces(t *Type, visited map[*Type]bool) (Style, bool) {
	level := []*Type{t}
	for len(level) > 0 {
		var next []*Type
		for _, base := range level {
			for _, intf := range base.Implements {
				if intf == nil || visited[intf] {
					continue
				}
				visited[intf] = true
				if intf.Style != "" {
					return intf.Style, true
				}
				next = append(next, intf)
			}
		}
		level = next
	}
	return "", false
}

// Catalog returns the well-known style base types, keyed by name. Each call
// returns fresh values.
func Catalog() map[string]*Type {
	types := []*Type{
		{Name: "org.scalatest.FunSuite", Style: Function, Interface: true},
		{Name: "org.scalatest.FeatureSpec", Style: Feature, Interface: true},
		{Name: "org.scalatest.FreeSpec", Style: Free, Interface: true},
		{Name: "org.scalatest.Suite", Style: Method, Interface: true},
	}
	out := make(map[string]*Type, len(types))
	for _, t := range types {
		out[t.Name] = t
	}
	return out
}
