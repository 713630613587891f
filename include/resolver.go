package include

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver probes an ordered list of search directories for include targets.
type Resolver struct {
	searchPaths []string
}

// NewResolver creates a resolver over the configured search directories.
// Directories are probed in the order given.
func NewResolver(searchPaths []string) *Resolver {
	return &Resolver{searchPaths: searchPaths}
}

// Resolve maps an include name to the canonical path of the first existing
// regular file among the candidate directories. Quoted includes try the
// including file's own directory before the configured search paths; angled
// includes never do. A miss returns ok=false, never an error — it is the
// expected outcome for genuine system headers.
func (r *Resolver) Resolve(name string, angled bool, includerDir string) (string, bool) {
	dirs := r.searchPaths
	if !angled {
		dirs = append([]string{includerDir}, r.searchPaths...)
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return Canonicalize(candidate), true
	}
	return "", false
}

// Canonicalize returns an absolute path with relative segments and symlinks
// collapsed, so every spelling of one physical file shares a ledger key.
func Canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}

// ResolveRoot validates that path is an existing regular file and returns its
// canonical form. Commands call this before handing the path to Expand.
func ResolveRoot(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: file doesn't exist", path)
	}
	return Canonicalize(path), nil
}

// ResolveSearchDirs validates that every entry is an existing directory and
// canonicalizes each one, preserving order.
func ResolveSearchDirs(dirs []string) ([]string, error) {
	resolved := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%s: directory doesn't exist", dir)
		}
		resolved = append(resolved, Canonicalize(dir))
	}
	return resolved, nil
}
