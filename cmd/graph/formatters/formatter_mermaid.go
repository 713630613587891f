package formatters

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/unify/include"
)

// MermaidFormatter formats include graphs as Mermaid.js flowcharts.
type MermaidFormatter struct{}

// Format converts the include graph to Mermaid.js flowchart format.
func (f *MermaidFormatter) Format(g include.Graph, opts FormatOptions) (string, error) {
	var sb strings.Builder

	// Add title if label provided
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	// Mermaid node IDs can't have dots or special characters, so every
	// vertex gets a synthetic ID.
	vertices := sortedVertices(g)
	nodeIDs := make(map[string]string, len(vertices))
	for i, vertex := range vertices {
		nodeIDs[vertex] = fmt.Sprintf("n%d", i)
	}

	for _, vertex := range vertices {
		sb.WriteString(fmt.Sprintf("  %s[%q]\n", nodeIDs[vertex], displayName(vertex)))
	}

	for _, vertex := range vertices {
		for _, dep := range g[vertex] {
			if depID, ok := nodeIDs[dep]; ok {
				sb.WriteString(fmt.Sprintf("  %s --> %s\n", nodeIDs[vertex], depID))
			}
		}
	}

	return sb.String(), nil
}
