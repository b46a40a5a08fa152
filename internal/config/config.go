// Package config loads and finalizes the Quill tool configuration. A base
// config.toml (when present) is merged with an environment overlay selected
// by QUILL_ENV, then every section applies defaults, environment variable
// overrides, and validation.
package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvQuillEnv     = "QUILL_ENV"
	EnvQuillVersion = "QUILL_VERSION"
)

// Config is the root configuration for the Quill tool.
type Config struct {
	Editor  EditorConfig         `toml:"editor"`
	Agent   gaconfig.AgentConfig `toml:"agent"`
	Version string               `toml:"version"`
}

// Env returns the QUILL_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvQuillEnv); env != "" {
		return env
	}
	return "local"
}

// Load reads the config file at path, or discovers config.toml in the
// working directory when path is empty, applies any environment overlay,
// and finalizes all values. With no config file at all, defaults and
// environment variables provide all configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	base := path
	if base == "" {
		base = BaseConfigFile
	}

	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if path != "" {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if overlay := overlayPath(); overlay != "" {
		loaded, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(loaded)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Editor.Merge(&overlay.Editor)
	c.Agent.Merge(&overlay.Agent)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Editor.Finalize(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	// Agent settings only matter when an agent-backed model is selected;
	// the local models run without a provider.
	if c.Editor.Model == ModelAgent {
		if err := FinalizeAgent(&c.Agent); err != nil {
			return fmt.Errorf("agent: %w", err)
		}
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvQuillVersion); v != "" {
		c.Version = v
	}
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvQuillEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
