package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	f := &JSONFormatter{}
	output, err := f.Format(testGraph(), FormatOptions{})

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"/project/a.h": ["/project/b.h", "vector"],
		"/project/b.h": [],
		"vector": []
	}`, output)
}

func TestNewFormatter(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"dot", "json", "mermaid"} {
		f, err := NewFormatter(format)
		require.NoError(t, err, format)
		assert.NotNil(t, f, format)
	}

	_, err := NewFormatter("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: yaml")
}
