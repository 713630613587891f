package include

import "strings"

// Disposition classifies the outcome of one include occurrence.
type Disposition int

const (
	// Expanded means the file's contents were inlined at this occurrence.
	Expanded Disposition = iota
	// AlreadyIncluded means the file was expanded earlier in the run and this
	// occurrence was elided.
	AlreadyIncluded
	// NotFound means no search path contained the file and the directive was
	// kept as-is, most likely a system header.
	NotFound
)

// String returns the label used in tree output. The spelling matches the
// markers embedded in generated files, quirks included.
func (d Disposition) String() string {
	switch d {
	case Expanded:
		return "expended"
	case AlreadyIncluded:
		return "already included"
	case NotFound:
		return "not found"
	}
	return "unknown"
}

// FileNode is one node of the dependency tree. The root node corresponds to
// the input file; every other node records one include directive encountered
// while scanning its parent, in source order. Nodes own their children
// exclusively: the same physical file showing up twice yields two nodes.
type FileNode struct {
	// Path is the canonical path for resolved files, or the literal include
	// name for NotFound entries.
	Path string
	// Angled records the directive's quoting style. False for the root.
	Angled bool
	// State is the disposition of this occurrence. Always Expanded for the root.
	State Disposition
	// Includes holds one child per directive found in this file.
	Includes []*FileNode
}

// RenderTree renders the dependency tree depth-first, pre-order, indenting
// children two spaces under their parent.
func RenderTree(root *FileNode) string {
	var sb strings.Builder
	renderNode(&sb, root, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *FileNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(Quote(n.Path, n.Angled))
	sb.WriteString(" (")
	sb.WriteString(n.State.String())
	sb.WriteString(")\n")
	for _, child := range n.Includes {
		renderNode(sb, child, depth+1)
	}
}
