package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/LegacyCodeHQ/unify/cmd/flatten"
	"github.com/LegacyCodeHQ/unify/include"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

// watchMaxDepth bounds expansion so a cycle introduced mid-edit cannot wedge
// the watch loop when --all is set.
const watchMaxDepth = 512

func watchAndRebuild(ctx context.Context, errOut io.Writer, root string, searchPaths []string, opts *watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	outPath := include.Canonicalize(opts.outFile)

	rebuild := func() {
		dirs, err := flattenToFile(root, searchPaths, opts)
		if err != nil {
			fmt.Fprintf(errOut, "rebuild error: %v\n", err)
			return
		}
		addWatchDirs(watcher, errOut, dirs)
	}
	rebuild()

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event, outPath) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, rebuild)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watcher error: %v\n", err)
		}
	}
}

// flattenToFile runs one expansion, writes the output file, and returns the
// directories of the include closure so the watch set can follow it.
func flattenToFile(root string, searchPaths []string, opts *watchOptions) ([]string, error) {
	result, err := include.Expand(root, include.Options{
		SearchPaths: searchPaths,
		ExpandAll:   opts.expandAll,
		Header:      flatten.Header,
		MaxDepth:    watchMaxDepth,
	})
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(opts.outFile, []byte(result.Output), 0o644); err != nil {
		return nil, fmt.Errorf("cannot open output file %s: %w", opts.outFile, err)
	}
	return closureDirs(result.Root), nil
}

// closureDirs returns the parent directory of every expanded file in the
// tree, deduplicated and sorted.
func closureDirs(root *include.FileNode) []string {
	seen := make(map[string]bool)
	var dirs []string

	var walk func(n *include.FileNode)
	walk = func(n *include.FileNode) {
		if n.State == include.Expanded {
			dir := filepath.Dir(n.Path)
			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
		for _, child := range n.Includes {
			walk(child)
		}
	}
	walk(root)

	sort.Strings(dirs)
	return dirs
}

func addWatchDirs(watcher *fsnotify.Watcher, errOut io.Writer, dirs []string) {
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(errOut, "failed to watch %s: %v\n", dir, err)
		}
	}
}

// isRelevantChange filters events down to content changes that are not the
// output file itself, which would otherwise retrigger the rebuild loop.
func isRelevantChange(event fsnotify.Event, outPath string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return include.Canonicalize(event.Name) != outPath
}
