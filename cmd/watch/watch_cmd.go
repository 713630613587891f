package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LegacyCodeHQ/unify/include"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	searchPaths []string
	expandAll   bool
	outFile     string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Watch a header's include closure and re-flatten on change",
		Long: `Watch the directories of every file in a header's include closure and
regenerate the flattened output whenever one of them changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringSliceVarP(&opts.searchPaths, "include", "I", nil, "Add a directory to the include search paths (repeatable)")
	cmd.Flags().BoolVarP(&opts.expandAll, "all", "a", false, "Expand every occurrence of a file, even ones expanded before")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Output file (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions, rootPath string) error {
	root, err := include.ResolveRoot(rootPath)
	if err != nil {
		return err
	}
	searchPaths, err := include.ResolveSearchDirs(opts.searchPaths)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", root)
	fmt.Fprintf(cmd.OutOrStdout(), "Writing %s\n", opts.outFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRebuild(ctx, cmd.ErrOrStderr(), root, searchPaths, opts)
}
