package formatters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LegacyCodeHQ/unify/include"
)

// DOTFormatter formats include graphs as Graphviz DOT.
type DOTFormatter struct{}

// Format converts the include graph to Graphviz DOT format. Vertices with no
// outgoing edges and no directory component are unresolved includes and get a
// dashed border.
func (f *DOTFormatter) Format(g include.Graph, opts FormatOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph includes {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	// Add label if provided
	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=\"%s\";\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	vertices := sortedVertices(g)
	for _, vertex := range vertices {
		if isUnresolved(vertex) {
			sb.WriteString(fmt.Sprintf("  %q [style=dashed];\n", displayName(vertex)))
		} else {
			sb.WriteString(fmt.Sprintf("  %q;\n", displayName(vertex)))
		}
	}
	sb.WriteString("\n")

	for _, vertex := range vertices {
		for _, dep := range g[vertex] {
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n", displayName(vertex), displayName(dep)))
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

// isUnresolved reports whether a vertex is keyed by a literal include name
// rather than a canonical path. Canonical paths are always absolute.
func isUnresolved(vertex string) bool {
	return !filepath.IsAbs(vertex)
}
