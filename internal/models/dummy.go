package models

import (
	"context"
	"strings"
)

// DummyModel returns the paragraph unchanged apart from joining its lines
// with spaces. With MarkParagraphs set it instead wraps the paragraph in
// start/end markers, which makes block boundaries visible in test output.
type DummyModel struct {
	MarkParagraphs bool
}

// Revise implements Model without calling anything.
func (m *DummyModel) Revise(_ context.Context, req Request) (string, error) {
	text := strings.TrimSpace(req.Paragraph)

	if m.MarkParagraphs {
		return "%%% PARAGRAPH START %%%\n" + text + "\n%%% PARAGRAPH END %%%", nil
	}

	return strings.ReplaceAll(text, "\n", " "), nil
}
