// Package config loads the optional simplesh configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Prompt string `yaml:"prompt"`
	Debug  bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		Prompt: "simplesh> ",
	}
}

// DefaultPath returns ~/.simplesh.yaml, or "" when no home directory is
// known (then only defaults apply).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simplesh.yaml")
}

// Load reads the config at path. A missing file is not an error: defaults
// are returned. A malformed file is a startup error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	// cfg is prefilled with defaults, so an absent key keeps its default
	// while an explicit empty value (prompt: "") is honored.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
