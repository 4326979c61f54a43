package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShow(t *testing.T, display string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, testDB, display))
	return buf.String()
}

func TestShow_Group(t *testing.T) {
	inTempDir(t)
	runInit(t)
	runIndex(t, writeSuites(t, "suites.yaml", suitesYAML))

	out := runShow(t, "Login")

	assert.Contains(t, out, "com.acme.LoginSpec")
	assert.Contains(t, out, "  Login works\n")
	assert.Contains(t, out, "  Login fails\n")
}

func TestShow_Leaf(t *testing.T) {
	inTempDir(t)
	runInit(t)
	runIndex(t, writeSuites(t, "suites.yaml", suitesYAML))

	out := runShow(t, "A stack pops")

	assert.Contains(t, out, "  A stack pops\n")
}

func TestShow_SuggestsFuzzyMatches(t *testing.T) {
	inTempDir(t)
	runInit(t)
	runIndex(t, writeSuites(t, "suites.yaml", suitesYAML))

	var buf bytes.Buffer
	err := RunShow(&buf, testDB, "stkpop")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `no selection named "stkpop"`)
	assert.Contains(t, buf.String(), "did you mean:")
	assert.Contains(t, buf.String(), "A stack pops")
}

func TestShow_NoSuggestions(t *testing.T) {
	inTempDir(t)
	runInit(t)
	runIndex(t, writeSuites(t, "suites.yaml", suitesYAML))

	var buf bytes.Buffer
	err := RunShow(&buf, testDB, "zzzz")

	require.Error(t, err)
	assert.NotContains(t, buf.String(), "did you mean")
}

func TestShow_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunShow(&buf, testDB, "Login")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tloc init")
}

func TestShow_RequiresIndex(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShow(&buf, testDB, "Login")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tloc index")
	assert.Empty(t, buf.String())
}
