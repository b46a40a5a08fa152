// Package formatting provides whitespace normalization utilities for prompt
// text and model output.
package formatting

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// CollapseSpaces replaces every run of whitespace (including newlines) with a
// single space and trims the result. Prompt templates are written as indented
// multi-line literals; this flattens them into the single-line instruction
// sent to the model.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}

// TrimIndent strips leading spaces and tabs from every line of text. Revised
// paragraph lines must never start with whitespace in the output file,
// regardless of how the model indents its response.
func TrimIndent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " \t")
	}
	return strings.Join(lines, "\n")
}
