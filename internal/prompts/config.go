// Package prompts implements the prompt resolution domain for Quill.
// It loads the layered per-manuscript prompt configuration and resolves,
// per filename, which instruction text to send to the completion model.
package prompts

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Configuration documents read from the manuscript content directory.
// Each is independently optional; absence is a distinct, observable state.
const (
	PromptsFile = "ai_revision-prompts.yaml"
	ConfigFile  = "ai_revision-config.yaml"
)

// Binding associates a filename pattern with a named prompt. A nil Prompt
// means the matched file is ignored rather than revised.
type Binding struct {
	Pattern string
	Prompt  *string
}

// Matching binds an ordered set of filename patterns to one named prompt.
// Entries come from the structured config's files.matchings list.
type Matching struct {
	Files  []string `yaml:"files"`
	Prompt string   `yaml:"prompt"`
}

// FilesConfig holds the filename rules of the structured config.
type FilesConfig struct {
	Matchings []Matching `yaml:"matchings"`
	Ignore    []string   `yaml:"ignore"`
}

// RevisionConfig is the structured configuration from ai_revision-config.yaml.
type RevisionConfig struct {
	Default string       `yaml:"default"`
	Files   *FilesConfig `yaml:"files"`
}

// Matchings returns the files.matchings entries, or nil when absent.
func (c *RevisionConfig) Matchings() []Matching {
	if c == nil || c.Files == nil {
		return nil
	}
	return c.Files.Matchings
}

// Ignore returns the files.ignore patterns, or nil when absent.
func (c *RevisionConfig) Ignore() []string {
	if c == nil || c.Files == nil {
		return nil
	}
	return c.Files.Ignore
}

// Config is the merged prompt configuration for one manuscript, composed
// from up to two independently optional source files. Nil fields record
// that a source (or source key) was absent, which callers distinguish from
// an empty mapping. Built once per editor construction, immutable after.
type Config struct {
	// Prompts is the named prompt catalogue (prompt name to prompt text)
	// from the prompts source's "prompts" key.
	Prompts map[string]string

	// PromptsFiles holds the pattern bindings from the prompts source's
	// "prompts_files" key, in declaration order.
	PromptsFiles []Binding

	// Revision is the structured config from ai_revision-config.yaml.
	Revision *RevisionConfig
}

// promptsSource mirrors the top level of ai_revision-prompts.yaml. The
// prompts_files mapping is decoded through yaml.Node to preserve the
// declaration order the resolver's first-match-wins contract depends on.
type promptsSource struct {
	Prompts      map[string]string `yaml:"prompts"`
	PromptsFiles *yaml.Node        `yaml:"prompts_files"`
}

// LoadConfig reads both configuration sources from contentDir. Missing files
// yield nil source states. When both the structured config's files.matchings
// and the prompts source's prompts_files are present and non-empty, a
// conflict diagnostic is logged once and prompts_files is discarded for
// matching purposes at resolution time.
func LoadConfig(contentDir string, logger *slog.Logger) (*Config, error) {
	cfg := &Config{}

	revision, err := loadRevisionConfig(filepath.Join(contentDir, ConfigFile))
	if err != nil {
		return nil, err
	}
	cfg.Revision = revision

	prompts, bindings, err := loadPromptsSource(filepath.Join(contentDir, PromptsFile), revision)
	if err != nil {
		return nil, err
	}
	cfg.Prompts = prompts
	cfg.PromptsFiles = bindings

	if cfg.Conflicted() {
		logger.Warn(
			"both configuration sources define filename matchings",
			"kept", fmt.Sprintf("%s files.matchings", ConfigFile),
			"discarded", fmt.Sprintf("%s prompts_files", PromptsFile),
		)
	}

	return cfg, nil
}

// Conflicted reports whether both sources define filename matchings.
// The structured config wins; prompts_files is not consulted for matching.
func (c *Config) Conflicted() bool {
	return len(c.Revision.Matchings()) > 0 && len(c.PromptsFiles) > 0
}

// Unconfigured reports whether every configuration source is absent.
func (c *Config) Unconfigured() bool {
	return c.Prompts == nil && c.PromptsFiles == nil && c.Revision == nil
}

func loadRevisionConfig(path string) (*RevisionConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var cfg RevisionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSource, filepath.Base(path), err)
	}
	return &cfg, nil
}

func loadPromptsSource(path string, revision *RevisionConfig) (map[string]string, []Binding, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var src promptsSource
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidSource, filepath.Base(path), err)
	}

	if src.Prompts == nil && src.PromptsFiles == nil {
		return nil, nil, fmt.Errorf(
			"%w: %s must contain a %q or %q key",
			ErrInvalidSource, filepath.Base(path), "prompts", "prompts_files",
		)
	}

	// A bare prompt catalogue needs the structured config to bind names
	// to filenames; without it no prompt could ever be selected.
	if src.Prompts != nil && src.PromptsFiles == nil && revision == nil {
		return nil, nil, fmt.Errorf(
			"%w: %s is required when %s defines only %q",
			ErrInvalidSource, ConfigFile, filepath.Base(path), "prompts",
		)
	}

	bindings, err := decodeBindings(src.PromptsFiles)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidSource, filepath.Base(path), err)
	}

	return src.Prompts, bindings, nil
}

// decodeBindings converts the prompts_files mapping node into an ordered
// binding list. yaml.Node retains document order where a map would not.
func decodeBindings(node *yaml.Node) ([]Binding, error) {
	if node == nil {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("prompts_files must be a mapping")
	}

	bindings := make([]Binding, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		b := Binding{Pattern: key.Value}
		if value.Tag != "!!null" && value.Value != "" {
			name := value.Value
			b.Prompt = &name
		}
		bindings = append(bindings, b)
	}

	return bindings, nil
}
