package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("feature")
	require.NoError(t, err)
	assert.Equal(t, Feature, s)

	_, err = Parse("spec")
	require.Error(t, err)
}

func TestLookup_InterfaceBeforeSuperclass(t *testing.T) {
	s1 := &Type{Name: "S1", Style: Free, Interface: true}
	base := &Type{Name: "Base", Style: Feature}
	suite := &Type{Name: "MySpec", Implements: []*Type{s1}, Extends: base}

	s, ok := Lookup(suite)

	require.True(t, ok)
	assert.Equal(t, Free, s)
}

func TestLookup_DeclarationOrder(t *testing.T) {
	plain := &Type{Name: "Matchers", Interface: true}
	first := &Type{Name: "First", Style: Function, Interface: true}
	second := &Type{Name: "Second", Style: Method, Interface: true}
	suite := &Type{Name: "MySpec", Implements: []*Type{plain, first, second}}

	s, ok := Lookup(suite)

	require.True(t, ok)
	assert.Equal(t, Function, s)
}

func TestLookup_BreadthFirst(t *testing.T) {
	deep := &Type{Name: "Deep", Style: Method, Interface: true}
	mid := &Type{Name: "Mid", Interface: true, Implements: []*Type{deep}}
	shallow := &Type{Name: "Shallow", Style: Feature, Interface: true}
	suite := &Type{Name: "MySpec", Implements: []*Type{mid, shallow}}

	s, ok := Lookup(suite)

	require.True(t, ok)
	assert.Equal(t, Feature, s)
}

func TestLookup_ParentInterfaces(t *testing.T) {
	styled := &Type{Name: "FreeSpecLike", Style: Free, Interface: true}
	mid := &Type{Name: "MyFreeSpecLike", Interface: true, Implements: []*Type{styled}}
	suite := &Type{Name: "MySpec", Implements: []*Type{mid}}

	s, ok := Lookup(suite)

	require.True(t, ok)
	assert.Equal(t, Free, s)
}

func TestLookup_SuperclassChain(t *testing.T) {
	root := &Type{Name: "FunSuite", Style: Function}
	mid := &Type{Name: "ProjectSuite", Extends: root}
	suite := &Type{Name: "MySuite", Extends: mid}

	s, ok := Lookup(suite)

	require.True(t, ok)
	assert.Equal(t, Function, s)
}

func TestLookup_SuperclassInterfaces(t *testing.T) {
	styled := &Type{Name: "FeatureSpecLike", Style: Feature, Interface: true}
	base := &Type{Name: "ProjectSpec", Implements: []*Type{styled}}
	suite := &Type{Name: "MySpec", Extends: base}

	s, ok := Lookup(suite)

	require.True(t, ok)
	assert.Equal(t, Feature, s)
}

func TestLookup_ChainContinuesThroughSearchedCapabilitySet(t *testing.T) {
	root := &Type{Name: "FeatureRoot", Style: Feature}
	mid := &Type{Name: "Mixed", Interface: true, Extends: root}
	suite := &Type{Name: "MySpec", Implements: []*Type{mid}, Extends: mid}

	s, ok := Lookup(suite)

	require.True(t, ok)
	assert.Equal(t, Feature, s)
}

func TestLookup_NoMetadata(t *testing.T) {
	base := &Type{Name: "Base"}
	suite := &Type{Name: "MySpec", Implements: []*Type{{Name: "Matchers", Interface: true}}, Extends: base}

	_, ok := Lookup(suite)
	assert.False(t, ok)

	_, ok = Lookup(nil)
	assert.False(t, ok)
}

func TestLookup_Cycles(t *testing.T) {
	a := &Type{Name: "A", Interface: true}
	b := &Type{Name: "B", Interface: true, Implements: []*Type{a}}
	a.Implements = []*Type{b}
	c := &Type{Name: "C"}
	c.Extends = c
	suite := &Type{Name: "MySpec", Implements: []*Type{a}, Extends: c}

	_, ok := Lookup(suite)
	assert.False(t, ok)
}

func TestCatalog(t *testing.T) {
	cat := Catalog()

	require.Contains(t, cat, "org.scalatest.FeatureSpec")
	assert.Equal(t, Feature, cat["org.scalatest.FeatureSpec"].Style)
	assert.Equal(t, Free, cat["org.scalatest.FreeSpec"].Style)
	assert.Equal(t, Function, cat["org.scalatest.FunSuite"].Style)
	assert.Equal(t, Method, cat["org.scalatest.Suite"].Style)

	cat["org.scalatest.Suite"].Style = Free
	assert.Equal(t, Method, Catalog()["org.scalatest.Suite"].Style)
}
