package config

import (
	"fmt"
	"os"
)

const (
	EnvEditorContentDir = "QUILL_CONTENT_DIR"
	EnvEditorOutputDir  = "QUILL_OUTPUT_DIR"
	EnvEditorModel      = "QUILL_MODEL"
)

// Recognized revision model selections.
const (
	ModelAgent    = "agent"
	ModelDummy    = "dummy"
	ModelScramble = "scramble"
)

// EditorConfig holds the manuscript revision parameters.
type EditorConfig struct {
	ContentDir string `toml:"content_dir"`
	OutputDir  string `toml:"output_dir"`
	Model      string `toml:"model"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *EditorConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *EditorConfig) Merge(overlay *EditorConfig) {
	if overlay.ContentDir != "" {
		c.ContentDir = overlay.ContentDir
	}
	if overlay.OutputDir != "" {
		c.OutputDir = overlay.OutputDir
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
}

func (c *EditorConfig) loadDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.OutputDir == "" {
		c.OutputDir = "revised"
	}
	if c.Model == "" {
		c.Model = ModelAgent
	}
}

func (c *EditorConfig) loadEnv() {
	if v := os.Getenv(EnvEditorContentDir); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv(EnvEditorOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvEditorModel); v != "" {
		c.Model = v
	}
}

func (c *EditorConfig) validate() error {
	switch c.Model {
	case ModelAgent, ModelDummy, ModelScramble:
	default:
		return fmt.Errorf("invalid model: %s", c.Model)
	}
	return nil
}
