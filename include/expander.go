package include

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options configures one expansion run. Toggles are threaded explicitly so
// the expander carries no ambient state.
type Options struct {
	// SearchPaths are the configured include directories, in probe order.
	// Callers canonicalize them first (see ResolveSearchDirs).
	SearchPaths []string
	// ExpandAll disables duplicate suppression: every occurrence of a file
	// expands independently, and nothing breaks include cycles.
	ExpandAll bool
	// Header is prepended verbatim to the flattened output.
	Header string
	// MaxDepth bounds include nesting when positive. Zero means unbounded,
	// which matches historical behavior but leaves ExpandAll cycles free to
	// recurse forever.
	MaxDepth int
	// Trace receives resolution progress when non-nil.
	Trace func(format string, args ...any)
}

// Result is the outcome of a successful expansion. Both fields are read-only
// once returned.
type Result struct {
	// Output is the flattened text, header included. Line terminators are
	// normalized to \n.
	Output string
	// Root is the dependency tree; its disposition is always Expanded.
	Root *FileNode
}

// Expand flattens root and everything reachable from it into a single text,
// building the dependency tree as it goes. The root must be an existing
// regular file, canonicalized (see ResolveRoot). A file that resolves but
// cannot be opened is fatal: the error names the offending path and no
// partial output is returned.
func Expand(root string, opts Options) (*Result, error) {
	e := &expander{
		opts:     opts,
		resolver: NewResolver(opts.SearchPaths),
		ledger:   NewLedger(),
	}

	body, node, err := e.expand(root, false, 0)
	if err != nil {
		return nil, err
	}
	return &Result{Output: opts.Header + body, Root: node}, nil
}

type expander struct {
	opts     Options
	resolver *Resolver
	ledger   Ledger
}

// expand reads path line by line, passing plain lines through and resolving
// directive lines in place. It returns the flattened text together with the
// tree node for this file, children appended in source order.
func (e *expander) expand(path string, angled bool, depth int) (string, *FileNode, error) {
	if e.opts.MaxDepth > 0 && depth > e.opts.MaxDepth {
		return "", nil, fmt.Errorf("include depth %d exceeded at %s", e.opts.MaxDepth, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("cannot open file %s: %w", path, err)
	}
	defer f.Close()

	// The file joins the ledger before its body is scanned, so a reference
	// back to it collapses into "already included" instead of recursing.
	e.ledger.Add(path)

	node := &FileNode{Path: path, Angled: angled, State: Expanded}
	dir := filepath.Dir(path)

	var out strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		d, ok := MatchDirective(line)
		if !ok {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		e.tracef("found include file %s", Quote(d.Name, d.Angled))
		text, child, err := e.expandDirective(d, dir, depth)
		if err != nil {
			return "", nil, err
		}
		out.WriteString(text)
		node.Includes = append(node.Includes, child)
	}
	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("cannot read file %s: %w", path, err)
	}

	return out.String(), node, nil
}

// expandDirective resolves one include line and returns the text standing in
// for it plus the child node recording its disposition.
func (e *expander) expandDirective(d Directive, includerDir string, depth int) (string, *FileNode, error) {
	target, found := e.resolver.Resolve(d.Name, d.Angled, includerDir)
	if !found {
		// Keep the directive so the real preprocessor still sees it; this is
		// how genuine system headers survive flattening.
		e.tracef("ignore include file %s because of not found (may be system header)", Quote(d.Name, d.Angled))
		node := &FileNode{Path: d.Name, Angled: d.Angled, State: NotFound}
		return d.Raw + "\n", node, nil
	}
	e.tracef("include file expends to %s", target)

	if !e.opts.ExpandAll && e.ledger.Contains(target) {
		e.tracef("include file already exists, ignore")
		node := &FileNode{Path: target, Angled: d.Angled, State: AlreadyIncluded}
		return "// " + d.Raw + " (omitted because it has been expended)\n", node, nil
	}

	content, child, err := e.expand(target, d.Angled, depth+1)
	if err != nil {
		return "", nil, err
	}
	return "// " + d.Raw + "\n" + content + "// End " + d.Raw + "\n", child, nil
}

func (e *expander) tracef(format string, args ...any) {
	if e.opts.Trace != nil {
		e.opts.Trace(format, args...)
	}
}
