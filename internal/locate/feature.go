package locate

import "github.com/chriserin/tloc/internal/ast"

// FeatureResolver recognizes feature("F") { scenario("S") { ... } } suites.
// A scenario nested in a feature is named "F S".
type FeatureResolver struct{}

func (FeatureResolver) Resolve(t *ast.Tree, id ast.NodeID) (Selection, bool) {
	n, ok := invocation(t, id, "scenario", "feature")
	if !ok {
		return Selection{}, false
	}
	text, ok := stringArg(n)
	if !ok {
		return Selection{}, false
	}

	if n.Name == "scenario" {
		name := text
		if feature, ok := featureText(t, n.Parent); ok {
			name = feature + " " + text
		}
		return newSelection(n.ClassName, name, name), true
	}

	var names []string
	for _, c := range n.Children {
		if scenario, ok := scenarioText(t, c); ok {
			names = append(names, text+" "+scenario)
		}
	}
	if len(names) == 0 {
		return Selection{}, false
	}
	return newSelection(n.ClassName, text, names...), true
}

func featureText(t *ast.Tree, id ast.NodeID) (string, bool) {
	n, ok := invocation(t, id, "feature")
	if !ok {
		return "", false
	}
	return stringArg(n)
}

func scenarioText(t *ast.Tree, id ast.NodeID) (string, bool) {
	n, ok := invocation(t, id, "scenario")
	if !ok {
		return "", false
	}
	return stringArg(n)
}
