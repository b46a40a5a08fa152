package prompts

import (
	"fmt"
	"regexp"
)

// Resolver resolves filenames to prompt text over an immutable Config.
// Patterns are regular expressions tested anywhere in the filename; among
// multiple matching rules the first declared wins. Overlapping patterns are
// a configuration concern the resolver does not detect.
type Resolver struct {
	config *Config
}

// NewResolver creates a Resolver over a loaded configuration.
func NewResolver(config *Config) *Resolver {
	return &Resolver{config: config}
}

// Resolve determines the prompt binding for a filename, in strict order:
// the structured config's ignore rules, then the active filename matching
// source (files.matchings when present and non-empty, else prompts_files),
// then the configured default prompt. A matched rule that names a prompt
// absent from the catalogue fails with ErrPromptNotFound rather than
// falling through to the default.
func (r *Resolver) Resolve(filename string) (Resolution, error) {
	for _, pattern := range r.config.Revision.Ignore() {
		m, err := match(pattern, filename)
		if err != nil {
			return Resolution{}, err
		}
		if m != nil {
			return ignored(m), nil
		}
	}

	if matchings := r.config.Revision.Matchings(); len(matchings) > 0 {
		return r.resolveMatchings(matchings, filename)
	}

	if r.config.PromptsFiles != nil {
		return r.resolveBindings(filename)
	}

	return r.resolveDefault(), nil
}

func (r *Resolver) resolveMatchings(matchings []Matching, filename string) (Resolution, error) {
	for _, entry := range matchings {
		for _, pattern := range entry.Files {
			m, err := match(pattern, filename)
			if err != nil {
				return Resolution{}, err
			}
			if m == nil {
				continue
			}

			if entry.Prompt == "" {
				return ignored(m), nil
			}

			text, err := r.lookup(entry.Prompt)
			if err != nil {
				return Resolution{}, err
			}
			return resolved(text, m), nil
		}
	}

	return r.resolveDefault(), nil
}

func (r *Resolver) resolveBindings(filename string) (Resolution, error) {
	for _, binding := range r.config.PromptsFiles {
		m, err := match(binding.Pattern, filename)
		if err != nil {
			return Resolution{}, err
		}
		if m == nil {
			continue
		}

		if binding.Prompt == nil || *binding.Prompt == "" {
			return ignored(m), nil
		}

		text, err := r.lookup(*binding.Prompt)
		if err != nil {
			return Resolution{}, err
		}
		return resolved(text, m), nil
	}

	return r.resolveDefault(), nil
}

func (r *Resolver) resolveDefault() Resolution {
	if r.config.Revision != nil && r.config.Revision.Default != "" {
		return resolved(r.config.Revision.Default, nil)
	}
	return unmatched()
}

// lookup resolves a prompt name against the flat catalogue shared by both
// matching sources.
func (r *Resolver) lookup(name string) (string, error) {
	text, ok := r.config.Prompts[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPromptNotFound, name)
	}
	return text, nil
}

// match tests a pattern anywhere in the filename, surfacing the matched span.
func match(pattern, filename string) (*Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}

	loc := re.FindStringIndex(filename)
	if loc == nil {
		return nil, nil
	}

	return &Match{
		Pattern: pattern,
		Start:   loc[0],
		End:     loc[1],
		Text:    filename[loc[0]:loc[1]],
	}, nil
}
