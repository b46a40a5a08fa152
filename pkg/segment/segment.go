// Package segment classifies Markdown lines and groups them into blocks for
// paragraph-level revision. Structural lines (headers, comments, blank lines)
// are preserved verbatim; maximal runs of consecutive prose lines form
// paragraph blocks that are revised as a single unit.
package segment

import "strings"

// Kind identifies what a block contains.
type Kind string

// Valid block kinds.
const (
	KindStructural Kind = "structural"
	KindParagraph  Kind = "paragraph"
)

// Block is an ordered run of lines of a single kind. Structural blocks hold
// exactly one line; paragraph blocks hold one or more consecutive prose lines.
type Block struct {
	Kind  Kind
	Lines []string
}

// Text joins the block's lines into the single text unit sent to the model.
// Boundary whitespace between lines collapses to a single newline.
func (b Block) Text() string {
	trimmed := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		trimmed[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(trimmed, "\n")
}

// Structural reports whether a line is not part of a paragraph: empty or
// whitespace-only, a Markdown heading, or an HTML comment opener. It is the
// single classification predicate used for both segmentation and
// preservation checking.
func Structural(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	if strings.HasPrefix(line, "#") {
		return true
	}
	return strings.HasPrefix(line, "<!--")
}

// Split groups lines into an ordered sequence of blocks. Each structural line
// becomes its own singleton block; consecutive paragraph lines merge into one
// block ending at the first structural line or end of input. Concatenating
// the blocks' lines in order reproduces the input exactly.
func Split(lines []string) []Block {
	var blocks []Block
	var run []string

	flush := func() {
		if len(run) > 0 {
			blocks = append(blocks, Block{Kind: KindParagraph, Lines: run})
			run = nil
		}
	}

	for _, line := range lines {
		if Structural(line) {
			flush()
			blocks = append(blocks, Block{Kind: KindStructural, Lines: []string{line}})
			continue
		}
		run = append(run, line)
	}
	flush()

	return blocks
}

// Join concatenates the blocks' lines in order.
func Join(blocks []Block) []string {
	var lines []string
	for _, b := range blocks {
		lines = append(lines, b.Lines...)
	}
	return lines
}

// StructuralLines returns the structural lines among lines, in order, with
// trailing whitespace stripped. Two files preserve structure when their
// StructuralLines are equal.
func StructuralLines(lines []string) []string {
	structural := make([]string, 0, len(lines))
	for _, line := range lines {
		if Structural(line) {
			structural = append(structural, strings.TrimRight(line, " \t\r"))
		}
	}
	return structural
}
