package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// CopyNode returns a state node for the ignored-file path. Single-file
// revision copies the file into the output directory unmodified; whole-
// manuscript revision omits it, so the output file count equals the input
// count minus the ignored count.
func CopyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		filename, err := stateString(s, KeyFilename)
		if err != nil {
			return s, fmt.Errorf("copy: %w", err)
		}

		copyIgnored := false
		if val, ok := s.Get(KeyCopyIgnored); ok {
			copyIgnored, _ = val.(bool)
		}

		if !copyIgnored {
			s = s.Set(KeyWritten, false)
			return s, nil
		}

		outputDir, err := stateString(s, KeyOutputDir)
		if err != nil {
			return s, fmt.Errorf("copy: %w", err)
		}

		data, err := os.ReadFile(rt.Manuscript.Path(filename))
		if err != nil {
			return s, fmt.Errorf("copy: %w: %w", ErrWriteFailed, err)
		}

		if err := writeOutput(outputDir, filename, data); err != nil {
			return s, fmt.Errorf("copy: %w", err)
		}

		s = s.Set(KeyWritten, true)
		return s, nil
	})
}

// WriteNode returns a state node that writes the reassembled output file.
// The whole file is written in one operation; a file that reached this node
// without output lines (the ignored path) passes through untouched.
func WriteNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		val, ok := s.Get(KeyOutput)
		if !ok {
			return s, nil
		}

		lines, ok := val.([]string)
		if !ok {
			return s, fmt.Errorf("write: %s is not []string", KeyOutput)
		}

		filename, err := stateString(s, KeyFilename)
		if err != nil {
			return s, fmt.Errorf("write: %w", err)
		}

		outputDir, err := stateString(s, KeyOutputDir)
		if err != nil {
			return s, fmt.Errorf("write: %w", err)
		}

		content := strings.Join(lines, "\n") + "\n"
		if err := writeOutput(outputDir, filename, []byte(content)); err != nil {
			return s, fmt.Errorf("write: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "output written",
			"filename", filename,
			"output_dir", outputDir,
		)

		s = s.Set(KeyWritten, true)
		return s, nil
	})
}

func writeOutput(outputDir, filename string, data []byte) error {
	if err := os.MkdirAll(outputDir, 0700); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}
