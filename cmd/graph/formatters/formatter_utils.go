package formatters

import (
	"path/filepath"
	"sort"

	"github.com/LegacyCodeHQ/unify/include"
)

// sortedVertices returns the graph's keys in lexical order so formatter
// output is deterministic.
func sortedVertices(g include.Graph) []string {
	vertices := make([]string, 0, len(g))
	for v := range g {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)
	return vertices
}

// displayName shortens a vertex to its base name. Unresolved includes are
// keyed by their literal name, which has no directory to strip.
func displayName(vertex string) string {
	return filepath.Base(vertex)
}
