// Package editor implements the manuscript revision pipeline for Quill.
// Each file runs through a state graph (resolve → copy-when-ignored |
// revise → write) that substitutes model-revised paragraphs back into the
// file while preserving every structural line verbatim.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/quill/internal/manuscript"
	"github.com/JaimeStill/quill/internal/models"
	"github.com/JaimeStill/quill/internal/prompts"
)

// Editor revises the files of a single manuscript. The prompt configuration
// is loaded and merged once at construction and immutable afterward; no
// state is retained across revision calls beyond it.
type Editor struct {
	runtime *Runtime
}

// New creates an Editor for the manuscript at contentDir. Construction fails
// when the content directory is missing or a configuration source is
// malformed; absent configuration sources are valid.
func New(contentDir string, model models.Model, logger *slog.Logger) (*Editor, error) {
	m, err := manuscript.Load(contentDir)
	if err != nil {
		return nil, err
	}

	cfg, err := prompts.LoadConfig(contentDir, logger)
	if err != nil {
		return nil, err
	}

	return &Editor{
		runtime: &Runtime{
			Manuscript: m,
			Resolver:   prompts.NewResolver(cfg),
			Model:      model,
			Logger:     logger,
		},
	}, nil
}

// Manuscript exposes the loaded manuscript.
func (e *Editor) Manuscript() *manuscript.Manuscript {
	return e.runtime.Manuscript
}

// Resolve returns the prompt binding for a filename without revising it.
func (e *Editor) Resolve(filename string) (prompts.Resolution, error) {
	return e.runtime.Resolver.Resolve(filename)
}

// ReviseFile revises a single manuscript file into outputDir. An ignored
// file is copied unmodified.
func (e *Editor) ReviseFile(ctx context.Context, filename, outputDir string) (*FileResult, error) {
	return e.processFile(ctx, filename, outputDir, true)
}

// ReviseManuscript revises every manuscript file into outputDir, omitting
// ignored files from the output set. A failing file aborts only that file;
// the remaining files still process, and the per-file errors are joined.
func (e *Editor) ReviseManuscript(ctx context.Context, outputDir string) (*RunResult, error) {
	files, err := e.runtime.Manuscript.Files()
	if err != nil {
		return nil, err
	}

	run := &RunResult{RunID: uuid.New()}

	e.runtime.Logger.InfoContext(
		ctx, "manuscript revision starting",
		"run_id", run.RunID,
		"content_dir", e.runtime.Manuscript.ContentDir,
		"file_count", len(files),
	)

	var errs []error
	for _, filename := range files {
		result, err := e.processFile(ctx, filename, outputDir, false)
		if err != nil {
			e.runtime.Logger.ErrorContext(
				ctx, "file revision failed",
				"run_id", run.RunID,
				"filename", filename,
				"error", err,
			)
			errs = append(errs, err)
			continue
		}
		run.Files = append(run.Files, *result)
	}

	run.CompletedAt = time.Now()

	e.runtime.Logger.InfoContext(
		ctx, "manuscript revision complete",
		"run_id", run.RunID,
		"written", run.Written(),
		"ignored", run.Ignored(),
		"failed", len(errs),
	)

	return run, errors.Join(errs...)
}

func (e *Editor) processFile(
	ctx context.Context,
	filename string,
	outputDir string,
	copyIgnored bool,
) (*FileResult, error) {
	graph, err := buildGraph(e.runtime)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initial := state.New(nil)
	initial = initial.Set(KeyFilename, filename)
	initial = initial.Set(KeyOutputDir, outputDir)
	initial = initial.Set(KeyCopyIgnored, copyIgnored)

	final, err := graph.Execute(ctx, initial)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return extractResult(final, filename)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("quill-revise")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("resolve", ResolveNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("copy", CopyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("revise", ReviseNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("write", WriteNode(rt)); err != nil {
		return nil, err
	}

	// resolve → copy (when an ignore rule matched)
	if err := graph.AddEdge("resolve", "copy", fileIgnored); err != nil {
		return nil, err
	}

	// resolve → revise (otherwise)
	if err := graph.AddEdge("resolve", "revise", state.Not(fileIgnored)); err != nil {
		return nil, err
	}

	// copy → write (pass-through; copy already wrote or skipped)
	if err := graph.AddEdge("copy", "write", nil); err != nil {
		return nil, err
	}

	// revise → write (unconditional)
	if err := graph.AddEdge("revise", "write", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("resolve"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("write"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State, filename string) (*FileResult, error) {
	result := &FileResult{Filename: filename}

	val, ok := s.Get(KeyResolution)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyResolution)
	}

	res, ok := val.(prompts.Resolution)
	if !ok {
		return nil, fmt.Errorf("%s is not Resolution", KeyResolution)
	}
	result.Ignored = res.Ignored()

	if val, ok := s.Get(KeyWritten); ok {
		result.Written, _ = val.(bool)
	}

	if val, ok := s.Get(KeyParagraphs); ok {
		result.Paragraphs, _ = val.(int)
	}

	return result, nil
}
