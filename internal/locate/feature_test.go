package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/tloc/internal/ast"
)

func loginFeature(t *testing.T) *ast.Tree {
	return build(t, "com.acme.LoginSpec",
		ast.Invoke("feature", ast.String("F")).With(
			ast.Invoke("scenario", ast.String("A")),
			ast.Invoke("scenario", ast.String("B")),
			ast.Invoke("info", ast.String("not a scenario")),
		),
	)
}

func TestFeature_CollectsScenariosInOrder(t *testing.T) {
	tree := loginFeature(t)

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0))

	require.True(t, ok)
	assert.Equal(t, "com.acme.LoginSpec", sel.ClassName)
	assert.Equal(t, "F", sel.DisplayName)
	assert.Equal(t, []string{"F A", "F B"}, sel.TestNames)
}

func TestFeature_ScenarioUnderFeature(t *testing.T) {
	tree := loginFeature(t)

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0, 0))

	require.True(t, ok)
	assert.Equal(t, "F A", sel.DisplayName)
	assert.Equal(t, []string{"F A"}, sel.TestNames)
}

func TestFeature_ScenarioWithoutFeature(t *testing.T) {
	tree := build(t, "S", ast.Invoke("scenario", ast.String("X")))

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0))

	require.True(t, ok)
	assert.Equal(t, "X", sel.DisplayName)
	assert.Equal(t, []string{"X"}, sel.TestNames)
}

func TestFeature_ScenarioUnderOtherInvocation(t *testing.T) {
	tree := build(t, "S",
		ast.Invoke("describe", ast.String("D")).With(
			ast.Invoke("scenario", ast.String("X")),
		),
	)

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0, 0))

	require.True(t, ok)
	assert.Equal(t, []string{"X"}, sel.TestNames)
}

func TestFeature_ScenarioUnderDefinition(t *testing.T) {
	tree := build(t, "S",
		ast.Define("setup").With(
			ast.Invoke("scenario", ast.String("X")),
		),
	)

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0, 0))

	require.True(t, ok)
	assert.Equal(t, []string{"X"}, sel.TestNames)
}

func TestFeature_ScenarioUnderMalformedFeature(t *testing.T) {
	tree := build(t, "S",
		ast.Invoke("feature", ast.Int(7)).With(
			ast.Invoke("scenario", ast.String("X")),
		),
	)

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0, 0))
	require.True(t, ok)
	assert.Equal(t, []string{"X"}, sel.TestNames)

	_, ok = FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0))
	assert.False(t, ok)
}

func TestFeature_OnlyDirectChildren(t *testing.T) {
	tree := build(t, "S",
		ast.Invoke("feature", ast.String("F")).With(
			ast.Invoke("scenario", ast.String("A")).With(
				ast.Invoke("scenario", ast.String("nested")),
			),
		),
	)

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0))

	require.True(t, ok)
	assert.Equal(t, []string{"F A"}, sel.TestNames)
}

func TestFeature_WithoutScenariosIsAbsent(t *testing.T) {
	tree := build(t, "S",
		ast.Invoke("feature", ast.String("F")).With(
			ast.Invoke("scenario", ast.Int(1)),
		),
	)

	_, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0))
	assert.False(t, ok)
}

func TestFeature_DuplicateScenarios(t *testing.T) {
	tree := build(t, "S",
		ast.Invoke("feature", ast.String("F")).With(
			ast.Invoke("scenario", ast.String("A")),
			ast.Invoke("scenario", ast.String("A")),
		),
	)

	sel, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0))

	require.True(t, ok)
	assert.Equal(t, []string{"F A"}, sel.TestNames)
}

func TestFeature_NonQualifying(t *testing.T) {
	tests := []struct {
		name  string
		shape ast.Shape
	}{
		{"scenario without args", ast.Invoke("scenario")},
		{"scenario with two args", ast.Invoke("scenario", ast.String("a"), ast.String("b"))},
		{"scenario with number", ast.Invoke("scenario", ast.Float(1.5))},
		{"feature with two args", ast.Invoke("feature", ast.String("a"), ast.String("b"))},
		{"test invocation", ast.Invoke("test", ast.String("a"))},
		{"definition", ast.Define("scenario")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := build(t, "S", tt.shape)
			_, ok := FeatureResolver{}.Resolve(tree, nodeAt(t, tree, 0))
			assert.False(t, ok)
		})
	}
}
