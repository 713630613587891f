package include

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantMatch  bool
		wantName   string
		wantAngled bool
	}{
		{name: "quoted include", line: `#include "foo.h"`, wantMatch: true, wantName: "foo.h"},
		{name: "angled include", line: `#include <vector>`, wantMatch: true, wantName: "vector", wantAngled: true},
		{name: "leading whitespace", line: "\t  #include \"foo.h\"", wantMatch: true, wantName: "foo.h"},
		{name: "trailing whitespace", line: `#include <vector>   `, wantMatch: true, wantName: "vector", wantAngled: true},
		{name: "space after hash", line: `#  include <cstdio>`, wantMatch: true, wantName: "cstdio", wantAngled: true},
		{name: "space before delimiter", line: `#include   "foo.h"`, wantMatch: true, wantName: "foo.h"},
		{name: "interior leading space trimmed", line: `#include < vector>`, wantMatch: true, wantName: "vector", wantAngled: true},
		{name: "subdirectory path", line: `#include "sub/bar.hpp"`, wantMatch: true, wantName: "sub/bar.hpp"},
		{name: "plain text", line: `int main() {}`, wantMatch: false},
		{name: "trailing comment disqualifies", line: `#include "foo.h" // comment`, wantMatch: false},
		{name: "macro filename not a match", line: `#include HEADER_NAME`, wantMatch: false},
		{name: "include without filename", line: `#include`, wantMatch: false},
		{name: "partial line not anchored", line: `x #include "foo.h"`, wantMatch: false},
		{name: "pragma is not an include", line: `#pragma once`, wantMatch: false},
		{name: "empty line", line: ``, wantMatch: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, ok := MatchDirective(tc.line)

			assert.Equal(t, tc.wantMatch, ok)
			if !tc.wantMatch {
				return
			}
			assert.Equal(t, tc.line, d.Raw)
			assert.Equal(t, tc.wantName, d.Name)
			assert.Equal(t, tc.wantAngled, d.Angled)
		})
	}
}

func TestMatchDirectiveInsideDisabledBranchStillMatches(t *testing.T) {
	t.Parallel()

	// Matching is line-level only; conditional compilation is not interpreted.
	d, ok := MatchDirective(`#include "debug.h"`)

	assert.True(t, ok)
	assert.Equal(t, "debug.h", d.Name)
}

func TestQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"foo.h"`, Quote("foo.h", false))
	assert.Equal(t, "<vector>", Quote("vector", true))
}
