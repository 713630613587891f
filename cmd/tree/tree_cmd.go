package tree

import (
	"fmt"

	"github.com/LegacyCodeHQ/unify/include"
	"github.com/spf13/cobra"
)

type treeOptions struct {
	expandAll   bool
	searchPaths []string
}

// Cmd represents the tree command.
var Cmd = NewCommand()

// NewCommand returns a new tree command instance.
func NewCommand() *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the dependency tree of a header",
		Long: `Print the dependency tree of a header without emitting flattened output.

Every include encountered shows up under its including file with its
disposition: expended, already included, or not found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.expandAll, "all", "a", false, "Expand every occurrence of a file, even ones expanded before")
	cmd.Flags().StringSliceVarP(&opts.searchPaths, "include", "I", nil, "Add a directory to the include search paths (repeatable)")

	return cmd
}

func runTree(cmd *cobra.Command, opts *treeOptions, rootPath string) error {
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
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), include.RenderTree(result.Root))
	return nil
}
