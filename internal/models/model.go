// Package models implements the completion-model collaborators that revise
// manuscript paragraphs. Model is an injectable strategy: the dummy and
// scramble variants exercise the pipeline without network calls, and the
// agent variant performs real revisions through a configured provider.
package models

import "context"

// Request carries one paragraph revision call. Prompt is the fully resolved
// instruction text; Title and Keywords are manuscript metadata available for
// interpolation by implementations that compose their own prompts.
type Request struct {
	Paragraph string
	Prompt    string
	Title     string
	Keywords  []string
}

// Model revises a single paragraph. Implementations return ErrModelFailed
// (possibly wrapped) when the revision cannot be completed; callers do not
// retry.
type Model interface {
	Revise(ctx context.Context, req Request) (string, error)
}
