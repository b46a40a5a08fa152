package editor

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/quill/internal/prompts"
)

// ResolveNode returns a state node that resolves the file's prompt binding.
// An ignored file carries no prompt; an unmatched file falls back to the
// built-in prompt for the section inferred from the filename.
func ResolveNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		filename, err := stateString(s, KeyFilename)
		if err != nil {
			return s, fmt.Errorf("resolve: %w", err)
		}

		res, err := rt.Resolver.Resolve(filename)
		if err != nil {
			return s, fmt.Errorf("resolve: %w: %w", ErrResolveFailed, err)
		}

		s = s.Set(KeyResolution, res)

		if res.Ignored() {
			rt.Logger.InfoContext(
				ctx, "file ignored",
				"filename", filename,
				"pattern", res.Match.Pattern,
			)
			return s, nil
		}

		prompt := res.Prompt
		if res.Unmatched() {
			section := prompts.SectionFromFilename(filename)
			prompt = prompts.BuiltIn(section, rt.Manuscript.Title, rt.Manuscript.Keywords)
		}

		s = s.Set(KeyPrompt, prompt)

		rt.Logger.InfoContext(
			ctx, "prompt resolved",
			"filename", filename,
			"outcome", res.Outcome,
		)

		return s, nil
	})
}

// fileIgnored is the edge condition separating the copy and revise paths.
func fileIgnored(s state.State) bool {
	val, ok := s.Get(KeyResolution)
	if !ok {
		return false
	}

	res, ok := val.(prompts.Resolution)
	if !ok {
		return false
	}

	return res.Ignored()
}

func stateString(s state.State, key string) (string, error) {
	val, ok := s.Get(key)
	if !ok {
		return "", fmt.Errorf("missing %s in state", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not string", key)
	}

	return str, nil
}
