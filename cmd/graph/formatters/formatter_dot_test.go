package formatters

import (
	"testing"

	"github.com/LegacyCodeHQ/unify/include"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph() include.Graph {
	return include.Graph{
		"/project/a.h": {"/project/b.h", "vector"},
		"/project/b.h": {},
		"vector":       {},
	}
}

func TestDOTFormatter(t *testing.T) {
	t.Parallel()

	f := &DOTFormatter{}
	output, err := f.Format(testGraph(), FormatOptions{})

	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "graph_dot", []byte(output))
}

func TestDOTFormatterLabel(t *testing.T) {
	t.Parallel()

	f := &DOTFormatter{}
	output, err := f.Format(testGraph(), FormatOptions{Label: "a.h • 3 files"})

	require.NoError(t, err)
	assert.Contains(t, output, "label=\"a.h • 3 files\";\n")
	assert.Contains(t, output, "labelloc=t;\n")
}

func TestDOTFormatterMarksUnresolvedIncludes(t *testing.T) {
	t.Parallel()

	f := &DOTFormatter{}
	output, err := f.Format(testGraph(), FormatOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "\"vector\" [style=dashed];\n")
	assert.Contains(t, output, "  \"a.h\";\n")
}
