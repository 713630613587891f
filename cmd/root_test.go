package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootRegistersSubcommands(t *testing.T) {
	t.Parallel()

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range []string{"flatten", "tree", "graph", "watch"} {
		assert.True(t, registered[name], "missing subcommand %s", name)
	}
}
