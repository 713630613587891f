package include

import (
	"regexp"
	"strings"
	"unicode"
)

// Directive is one parsed #include line.
type Directive struct {
	// Raw is the full source line, verbatim.
	Raw string
	// Name is the filename between the delimiters.
	Name string
	// Angled is true for #include <...>, false for #include "...".
	Angled bool
}

var (
	includePattern = regexp.MustCompile(`^\s*#\s*include\s*(<.*>|".*")\s*$`)
	angledPattern  = regexp.MustCompile(`^\s*#\s*include\s*<.*>\s*$`)
)

// MatchDirective reports whether line is an include directive and, if so,
// returns its parsed form. The match is line-anchored: anything else on the
// line disqualifies it, and such lines are plain text to the expander. The
// filename is taken literally, with no macro or escape handling.
func MatchDirective(line string) (Directive, bool) {
	if !includePattern.MatchString(line) {
		return Directive{}, false
	}
	return Directive{
		Raw:    line,
		Name:   extractName(line),
		Angled: angledPattern.MatchString(line),
	}, true
}

// extractName pulls the filename out of a line already known to match the
// include pattern: skip to the opening delimiter, skip interior blanks, then
// take everything up to the closing delimiter or the next blank.
func extractName(line string) string {
	i := strings.IndexAny(line, `<"`) + 1
	for i < len(line) && unicode.IsSpace(rune(line[i])) {
		i++
	}
	j := i
	for j < len(line) && line[j] != '>' && line[j] != '"' && !unicode.IsSpace(rune(line[j])) {
		j++
	}
	return line[i:j]
}

// Quote renders name the way it appeared in source, with angle brackets or
// double quotes.
func Quote(name string, angled bool) string {
	if angled {
		return "<" + name + ">"
	}
	return `"` + name + `"`
}
