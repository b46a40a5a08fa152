package editor

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/quill/internal/models"
	"github.com/JaimeStill/quill/pkg/formatting"
	"github.com/JaimeStill/quill/pkg/segment"
)

// ReviseNode returns a state node that segments the file into blocks,
// revises each paragraph block through the model, and reassembles the
// output in original block order. Paragraph calls dispatch concurrently;
// structural lines pass through untouched. The node fails without output
// when any paragraph call fails or when reassembly does not preserve the
// input's structural lines.
func ReviseNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		filename, err := stateString(s, KeyFilename)
		if err != nil {
			return s, fmt.Errorf("revise: %w", err)
		}

		prompt, err := stateString(s, KeyPrompt)
		if err != nil {
			return s, fmt.Errorf("revise: %w", err)
		}

		lines, err := rt.Manuscript.ReadLines(filename)
		if err != nil {
			return s, fmt.Errorf("revise: %w: %w", ErrReviseFailed, err)
		}

		blocks := segment.Split(lines)

		revised, paragraphs, err := reviseBlocks(ctx, rt, blocks, prompt)
		if err != nil {
			return s, fmt.Errorf("revise %s: %w", filename, err)
		}

		output := segment.Join(revised)

		if !slices.Equal(segment.StructuralLines(lines), segment.StructuralLines(output)) {
			return s, fmt.Errorf("revise %s: %w", filename, ErrStructuralMismatch)
		}

		rt.Logger.InfoContext(
			ctx, "file revised",
			"filename", filename,
			"paragraphs", paragraphs,
		)

		s = s.Set(KeyOutput, output)
		s = s.Set(KeyParagraphs, paragraphs)

		return s, nil
	})
}

func reviseBlocks(
	ctx context.Context,
	rt *Runtime,
	blocks []segment.Block,
	prompt string,
) ([]segment.Block, int, error) {
	revised := make([]segment.Block, len(blocks))
	paragraphs := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reviseWorkerCount(len(blocks)))

	for i, block := range blocks {
		if block.Kind != segment.KindParagraph {
			revised[i] = block
			continue
		}

		paragraphs++

		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			text, err := rt.Model.Revise(gctx, models.Request{
				Paragraph: block.Text(),
				Prompt:    prompt,
				Title:     rt.Manuscript.Title,
				Keywords:  rt.Manuscript.Keywords,
			})
			if err != nil {
				return fmt.Errorf("%w: block %d: %w", ErrReviseFailed, i+1, err)
			}

			revised[i] = segment.Block{
				Kind:  segment.KindParagraph,
				Lines: strings.Split(formatting.TrimIndent(text), "\n"),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return revised, paragraphs, nil
}

func reviseWorkerCount(blockCount int) int {
	return max(min(runtime.NumCPU(), blockCount), 1)
}
