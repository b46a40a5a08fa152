package editor

import (
	"time"

	"github.com/google/uuid"
)

// State bag keys shared by the revision graph nodes.
const (
	KeyFilename    = "filename"
	KeyOutputDir   = "output_dir"
	KeyCopyIgnored = "copy_ignored"
	KeyResolution  = "resolution"
	KeyPrompt      = "prompt"
	KeyOutput      = "output_lines"
	KeyParagraphs  = "paragraph_count"
	KeyWritten     = "written"
)

// FileResult is the outcome of processing one manuscript file.
type FileResult struct {
	Filename   string `json:"filename"`
	Ignored    bool   `json:"ignored"`
	Written    bool   `json:"written"`
	Paragraphs int    `json:"paragraphs"`
}

// RunResult is the outcome of revising a whole manuscript.
type RunResult struct {
	RunID       uuid.UUID    `json:"run_id"`
	Files       []FileResult `json:"files"`
	CompletedAt time.Time    `json:"completed_at"`
}

// Written counts the files written to the output directory.
func (r *RunResult) Written() int {
	count := 0
	for _, f := range r.Files {
		if f.Written {
			count++
		}
	}
	return count
}

// Ignored counts the files excluded by ignore rules.
func (r *RunResult) Ignored() int {
	count := 0
	for _, f := range r.Files {
		if f.Ignored {
			count++
		}
	}
	return count
}
