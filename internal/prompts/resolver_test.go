package prompts_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/quill/internal/prompts"
)

func loadConfig(t *testing.T, dir string) *prompts.Config {
	t.Helper()
	cfg, err := prompts.LoadConfig(dir, discard())
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	return cfg
}

// manuscriptConfig mirrors the phenoplier fixture layout from the reference
// manuscripts: named prompts plus structured matchings and ignore rules.
func manuscriptConfig(t *testing.T) *prompts.Config {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts:
  abstract: |
    Test match abstract.
  intro_discussion: |
    Test match introduction or discussion.
  results: |
    Test match results.
  methods: |
    Test match methods.
`)
	writeSource(t, dir, prompts.ConfigFile, `
default: default prompt text
files:
  matchings:
    - files:
        - abstract
      prompt: abstract
    - files:
        - introduction
        - discussion
      prompt: intro_discussion
    - files:
        - '04\..+\.md'
      prompt: results
    - files:
        - methods
      prompt: methods
  ignore:
    - front-matter
    - references
    - acknowledgements
    - supplementary_material
`)
	return loadConfig(t, dir)
}

func TestResolveManuscriptRules(t *testing.T) {
	r := prompts.NewResolver(manuscriptConfig(t))

	tests := []struct {
		filename  string
		outcome   prompts.Outcome
		prompt    string
		matchedOn string
	}{
		{"00.front-matter.md", prompts.OutcomeIgnored, "", "front-matter"},
		{"01.abstract.md", prompts.OutcomeResolved, "Test match abstract.\n", "abstract"},
		{"02.introduction.md", prompts.OutcomeResolved, "Test match introduction or discussion.\n", "introduction"},
		{"04.00.results.md", prompts.OutcomeResolved, "Test match results.\n", "04.00.results.md"},
		{"04.05.01.crispr.md", prompts.OutcomeResolved, "Test match results.\n", "04.05.01.crispr.md"},
		{"04.15.drug_disease_prediction.md", prompts.OutcomeResolved, "Test match results.\n", "04.15.drug_disease_prediction.md"},
		{"05.discussion.md", prompts.OutcomeResolved, "Test match introduction or discussion.\n", "discussion"},
		{"07.00.methods.md", prompts.OutcomeResolved, "Test match methods.\n", "methods"},
		{"10.references.md", prompts.OutcomeIgnored, "", "references"},
		{"50.00.supplementary_material.md", prompts.OutcomeIgnored, "", "supplementary_material"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			res, err := r.Resolve(tt.filename)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}

			if res.Outcome != tt.outcome {
				t.Fatalf("Outcome = %q, want %q", res.Outcome, tt.outcome)
			}
			if res.Prompt != tt.prompt {
				t.Errorf("Prompt = %q, want %q", res.Prompt, tt.prompt)
			}
			if res.Match == nil {
				t.Fatal("Match = nil, want matched span")
			}
			if res.Match.Text != tt.matchedOn {
				t.Errorf("Match.Text = %q, want %q", res.Match.Text, tt.matchedOn)
			}
		})
	}
}

func TestResolveDefaultFallback(t *testing.T) {
	r := prompts.NewResolver(manuscriptConfig(t))

	res, err := r.Resolve("some-unknown-file.md")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if !res.Resolved() {
		t.Fatalf("Outcome = %q, want resolved", res.Outcome)
	}
	if res.Prompt != "default prompt text" {
		t.Errorf("Prompt = %q, want default prompt text", res.Prompt)
	}
	if res.Match != nil {
		t.Errorf("Match = %+v, want nil", res.Match)
	}
}

func TestResolveUnconfigured(t *testing.T) {
	r := prompts.NewResolver(loadConfig(t, t.TempDir()))

	res, err := r.Resolve("01.abstract.md")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if !res.Unmatched() {
		t.Errorf("Outcome = %q, want unmatched", res.Outcome)
	}
	if res.Match != nil {
		t.Errorf("Match = %+v, want nil", res.Match)
	}
}

func TestResolvePrecedenceOverPromptsFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts:
  abs: prompt bound to abs
  abs2: prompt bound to abs2
prompts_files:
  abstract.md: abs
`)
	writeSource(t, dir, prompts.ConfigFile, `
files:
  matchings:
    - files: [abstract.md]
      prompt: abs2
`)

	r := prompts.NewResolver(loadConfig(t, dir))

	res, err := r.Resolve("abstract.md")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if res.Prompt != "prompt bound to abs2" {
		t.Errorf("Prompt = %q, want the files.matchings binding", res.Prompt)
	}
}

func TestResolveIgnorePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts:
  abs: prompt bound to abs
`)
	writeSource(t, dir, prompts.ConfigFile, `
files:
  matchings:
    - files: [abstract]
      prompt: abs
  ignore:
    - abstract
`)

	r := prompts.NewResolver(loadConfig(t, dir))

	res, err := r.Resolve("01.abstract.md")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if !res.Ignored() {
		t.Errorf("Outcome = %q, want ignored", res.Outcome)
	}
	if res.Match == nil || res.Match.Text != "abstract" {
		t.Errorf("Match = %+v, want abstract span", res.Match)
	}
}

func TestResolveNullBindingIgnores(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts_files:
  references: null
`)

	r := prompts.NewResolver(loadConfig(t, dir))

	res, err := r.Resolve("10.references.md")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if !res.Ignored() {
		t.Errorf("Outcome = %q, want ignored", res.Outcome)
	}
}

func TestResolveFirstDeclaredWins(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts:
  first: first prompt
  second: second prompt
prompts_files:
  'results': first
  '04\..+\.md': second
`)

	r := prompts.NewResolver(loadConfig(t, dir))

	res, err := r.Resolve("04.00.results.md")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if res.Prompt != "first prompt" {
		t.Errorf("Prompt = %q, want the first declared binding", res.Prompt)
	}
}

func TestResolvePromptNotFound(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts:
  abs: prompt bound to abs
`)
	writeSource(t, dir, prompts.ConfigFile, `
default: default prompt text
files:
  matchings:
    - files: [abstract]
      prompt: missing
`)

	r := prompts.NewResolver(loadConfig(t, dir))

	_, err := r.Resolve("01.abstract.md")
	if !errors.Is(err, prompts.ErrPromptNotFound) {
		t.Errorf("Resolve error = %v, want ErrPromptNotFound", err)
	}
}

func TestResolveMatchSpanCoversFullFilename(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts:
  results: results prompt
prompts_files:
  '04\..+\.md': results
`)

	r := prompts.NewResolver(loadConfig(t, dir))

	res, err := r.Resolve("04.05.01.crispr.md")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if res.Match == nil {
		t.Fatal("Match = nil")
	}
	if res.Match.Text != "04.05.01.crispr.md" {
		t.Errorf("Match.Text = %q, want full filename", res.Match.Text)
	}
	if res.Match.Start != 0 || res.Match.End != len("04.05.01.crispr.md") {
		t.Errorf("span = [%d, %d), want full filename", res.Match.Start, res.Match.End)
	}
}

func TestResolveInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, prompts.PromptsFile, `
prompts:
  abs: prompt
prompts_files:
  'results(': abs
`)

	r := prompts.NewResolver(loadConfig(t, dir))

	_, err := r.Resolve("04.00.results.md")
	if !errors.Is(err, prompts.ErrInvalidPattern) {
		t.Errorf("Resolve error = %v, want ErrInvalidPattern", err)
	}
}
