package include

import (
	"errors"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// Graph maps each file in the include closure to the files it includes, in
// source order with duplicates removed. Resolved files are keyed by canonical
// path; NotFound entries keep their literal include name so renderers can
// still show them.
type Graph map[string][]string

// BuildGraph projects a dependency tree onto an adjacency map. Occurrences of
// the same file collapse into one vertex regardless of disposition.
func BuildGraph(root *FileNode) Graph {
	g := make(Graph)

	var walk func(n *FileNode)
	walk = func(n *FileNode) {
		if _, ok := g[n.Path]; !ok {
			g[n.Path] = []string{}
		}
		for _, child := range n.Includes {
			if !containsPath(g[n.Path], child.Path) {
				g[n.Path] = append(g[n.Path], child.Path)
			}
			if _, ok := g[child.Path]; !ok {
				g[child.Path] = []string{}
			}
			if child.State == Expanded {
				walk(child)
			}
		}
	}
	walk(root)

	return g
}

// Cycles returns the include cycles present in g, one sorted vertex list per
// cycle, cycles ordered by their first vertex. Self-includes count as a cycle
// of one.
func Cycles(g Graph) ([][]string, error) {
	dg := graphlib.New(graphlib.StringHash, graphlib.Directed())

	vertices := make([]string, 0, len(g))
	for v := range g {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)

	for _, v := range vertices {
		if err := dg.AddVertex(v); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return nil, err
		}
	}
	for _, v := range vertices {
		for _, dep := range g[v] {
			if dep == v {
				continue // self-loops handled from the map below
			}
			if _, err := dg.Vertex(dep); err != nil {
				continue
			}
			if err := dg.AddEdge(v, dep); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	sccs, err := graphlib.StronglyConnectedComponents(dg)
	if err != nil {
		return nil, err
	}

	var cycles [][]string
	for _, scc := range sccs {
		if len(scc) > 1 {
			sort.Strings(scc)
			cycles = append(cycles, scc)
			continue
		}
		if containsPath(g[scc[0]], scc[0]) {
			cycles = append(cycles, []string{scc[0]})
		}
	}
	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })
	return cycles, nil
}

func containsPath(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}
