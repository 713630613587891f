package cmd

import (
	"os"

	"github.com/LegacyCodeHQ/unify/cmd/flatten"
	"github.com/LegacyCodeHQ/unify/cmd/graph"
	"github.com/LegacyCodeHQ/unify/cmd/tree"
	"github.com/LegacyCodeHQ/unify/cmd/watch"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unify",
	Short: "Generate a single self-contained include file for C/C++",
	Long: `Unify flattens a header and everything it includes into one
self-contained file. Includes found on the configured search paths are
expanded in place; unresolved ones (typically system headers) are kept
as-is for the real preprocessor.

Use 'unify --help' to see all available commands, or 'unify <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(flatten.Cmd)
	rootCmd.AddCommand(tree.Cmd)
	rootCmd.AddCommand(graph.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
