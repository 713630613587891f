package flatten

import (
	"fmt"
	"os"

	"github.com/LegacyCodeHQ/unify/include"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Header is the banner emitted at the top of every generated file.
const Header = `// This file is generated automatically by unify
// It's suggested not to edit anything below
// If you found any issue, please report to https://github.com/LegacyCodeHQ/unify/issues
`

type flattenOptions struct {
	expandAll       bool
	dryRun          bool
	searchPaths     []string
	outFile         string
	showTree        bool
	verbose         bool
	copyToClipboard bool
}

// Cmd represents the flatten command.
var Cmd = NewCommand()

// NewCommand returns a new flatten command instance.
func NewCommand() *cobra.Command {
	opts := &flattenOptions{}

	cmd := &cobra.Command{
		Use:   "flatten FILE",
		Short: "Flatten a header and everything it includes into one file",
		Long: `Flatten a header and everything it includes into one file.

Each include resolvable through the search paths is replaced by its
(recursively flattened) contents. A file already expanded earlier in the
run is elided with a marker comment; pass --all to expand every
occurrence instead. Includes that resolve to nothing are kept verbatim
so the preprocessor can still find genuine system headers.

Examples:
  unify flatten mylib.hpp                     # flatten to stdout
  unify flatten -I include -o single.hpp a.h  # extra search path, write file
  unify flatten -t a.h                        # also print the dependency tree
  unify flatten -d -v a.h                     # trace resolution, emit nothing`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.expandAll, "all", "a", false, "Expand every occurrence of a file, even ones expanded before")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry", "d", false, "Dry run, do not emit the flattened output")
	cmd.Flags().StringSliceVarP(&opts.searchPaths, "include", "I", nil, "Add a directory to the include search paths (repeatable)")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Write output to FILE instead of stdout")
	cmd.Flags().BoolVarP(&opts.showTree, "tree", "t", false, "Print the dependency tree to stderr")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Trace include resolution to stderr (implies --tree)")
	cmd.Flags().BoolVarP(&opts.copyToClipboard, "clipboard", "b", false, "Automatically copy output to clipboard")

	return cmd
}

func runFlatten(cmd *cobra.Command, opts *flattenOptions, rootPath string) error {
	root, err := include.ResolveRoot(rootPath)
	if err != nil {
		return err
	}
	searchPaths, err := include.ResolveSearchDirs(opts.searchPaths)
	if err != nil {
		return err
	}

	expandOpts := include.Options{
		SearchPaths: searchPaths,
		ExpandAll:   opts.expandAll,
		Header:      Header,
	}
	showTree := opts.showTree
	if opts.verbose {
		showTree = true
		expandOpts.Trace = func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		}
	}

	result, err := include.Expand(root, expandOpts)
	if err != nil {
		return err
	}

	if !opts.dryRun {
		if opts.outFile != "" {
			if err := os.WriteFile(opts.outFile, []byte(result.Output), 0o644); err != nil {
				return fmt.Errorf("cannot open output file %s: %w", opts.outFile, err)
			}
		} else {
			fmt.Fprint(cmd.OutOrStdout(), result.Output)
		}
	}

	if showTree {
		fmt.Fprint(cmd.ErrOrStderr(), include.RenderTree(result.Root))
	}

	// Copy to clipboard if flag is enabled
	if opts.copyToClipboard {
		if err := clipboard.WriteAll(result.Output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	return nil
}
