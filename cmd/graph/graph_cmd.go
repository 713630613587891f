package graph

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LegacyCodeHQ/unify/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/unify/include"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	outputFormat    string
	searchPaths     []string
	expandAll       bool
	copyToClipboard bool
}

// Cmd represents the graph command.
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Generate an include graph for a header",
		Long: `Generate an include graph for a header.

The graph covers the whole include closure: expanded files, elided
duplicates, and unresolved includes. Include cycles are reported as
warnings on stderr.

Examples:
  unify graph a.h                   # DOT graph on stdout
  unify graph -f mermaid a.h        # Mermaid flowchart
  unify graph -f json -I include a.h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts, args[0])
		},
	}

	// Add format flag
	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", formatters.OutputFormatDOT.String(),
		fmt.Sprintf("Output format (%s, %s, %s)", formatters.OutputFormatDOT, formatters.OutputFormatJSON, formatters.OutputFormatMermaid))
	cmd.Flags().StringSliceVarP(&opts.searchPaths, "include", "I", nil, "Add a directory to the include search paths (repeatable)")
	cmd.Flags().BoolVarP(&opts.expandAll, "all", "a", false, "Expand every occurrence of a file, even ones expanded before")
	// Add clipboard flag for copying output to clipboard
	cmd.Flags().BoolVarP(&opts.copyToClipboard, "clipboard", "b", false, "Automatically copy output to clipboard")

	return cmd
}

func runGraph(cmd *cobra.Command, opts *graphOptions, rootPath string) error {
	root, err := include.ResolveRoot(rootPath)
	if err != nil {
		return err
	}
	searchPaths, err := include.ResolveSearchDirs(opts.searchPaths)
	if err != nil {
		return err
	}

	result, err := include.Expand(root, include.Options{
		SearchPaths: searchPaths,
		ExpandAll:   opts.expandAll,
	})
	if err != nil {
		return fmt.Errorf("failed to build include graph: %w", err)
	}

	g := include.BuildGraph(result.Root)

	cycles, err := include.Cycles(g)
	if err != nil {
		return fmt.Errorf("failed to detect include cycles: %w", err)
	}
	for _, cycle := range cycles {
		names := make([]string, 0, len(cycle))
		for _, vertex := range cycle {
			names = append(names, filepath.Base(vertex))
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: include cycle among: %s\n", strings.Join(names, ", "))
	}

	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	label := graphLabel(root, len(g))
	output, err := formatter.Format(g, formatters.FormatOptions{Label: label})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)

	// Copy to clipboard if flag is enabled
	if opts.copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	return nil
}

// graphLabel builds the graph title shown by the DOT and Mermaid formats.
func graphLabel(root string, fileCount int) string {
	if fileCount == 1 {
		return fmt.Sprintf("%s • %d file", filepath.Base(root), fileCount)
	}
	return fmt.Sprintf("%s • %d files", filepath.Base(root), fileCount)
}
