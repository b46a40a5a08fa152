package segment_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/quill/pkg/segment"
)

func TestStructural(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t", true},
		{"heading", "# Introduction", true},
		{"subheading", "## Results {#sec:results}", true},
		{"comment", "<!-- split here -->", true},
		{"prose", "PhenoPLIER is a framework that integrates gene modules.", false},
		{"prose with leading indent", "  continued clause of the sentence,", false},
		{"prose starting with digit", "42 traits were clustered into groups.", false},
		{"citation line", "[@doi:10.1038/s41588-021-00913-z]. More text.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segment.Structural(tt.line); got != tt.want {
				t.Errorf("Structural(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	lines := []string{
		"## Abstract",
		"",
		"First sentence of the abstract.",
		"Second sentence of the abstract.",
		"",
		"<!-- reviewer note -->",
		"A second paragraph.",
	}

	blocks := segment.Split(lines)

	wantKinds := []segment.Kind{
		segment.KindStructural,
		segment.KindStructural,
		segment.KindParagraph,
		segment.KindStructural,
		segment.KindStructural,
		segment.KindParagraph,
	}

	if len(blocks) != len(wantKinds) {
		t.Fatalf("len(blocks) = %d, want %d", len(blocks), len(wantKinds))
	}

	for i, b := range blocks {
		if b.Kind != wantKinds[i] {
			t.Errorf("blocks[%d].Kind = %q, want %q", i, b.Kind, wantKinds[i])
		}
	}

	par := blocks[2]
	if len(par.Lines) != 2 {
		t.Fatalf("paragraph block has %d lines, want 2", len(par.Lines))
	}
	if par.Text() != "First sentence of the abstract.\nSecond sentence of the abstract." {
		t.Errorf("Text() = %q", par.Text())
	}
}

func TestSplitRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"structural only", []string{"# Title", "", "<!-- end -->"}},
		{"paragraph only", []string{"one", "two", "three"}},
		{"trailing paragraph", []string{"# H", "prose", "more prose"}},
		{"alternating", []string{"a", "", "b", "", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment.Join(segment.Split(tt.lines))
			if !slices.Equal(got, tt.lines) {
				t.Errorf("Join(Split(lines)) = %v, want %v", got, tt.lines)
			}
		})
	}
}

func TestBlockTextTrimsTrailingWhitespace(t *testing.T) {
	b := segment.Block{
		Kind:  segment.KindParagraph,
		Lines: []string{"first line  ", "second line\t"},
	}
	if b.Text() != "first line\nsecond line" {
		t.Errorf("Text() = %q", b.Text())
	}
}

func TestStructuralLines(t *testing.T) {
	lines := []string{
		"# Title  ",
		"prose line",
		"",
		"<!-- note -->",
		"more prose",
	}

	want := []string{"# Title", "", "<!-- note -->"}
	if got := segment.StructuralLines(lines); !slices.Equal(got, want) {
		t.Errorf("StructuralLines = %v, want %v", got, want)
	}
}
