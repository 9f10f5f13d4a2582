package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceKind identifies where an effective configuration came from.
type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// LoadResult is the loaded configuration plus provenance for the
// config print/validate subcommands.
type LoadResult struct {
	Config *Config
	Source SourceKind
	Path   string // the file consulted, even when absent
}

// DefaultConfigPath returns ~/.config/frametile/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "frametile", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing
// file yields the defaults.
func Load() (*Config, error) {
	res, err := LoadWithSource()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadWithSource loads from the standard location and reports where the
// effective configuration came from.
func LoadWithSource() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the configuration file at path. File values overlay
// the defaults; a missing file is not an error.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	result := &LoadResult{Config: cfg, Source: SourceDefault, Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	result.Source = SourceFile

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return result, nil
}

// Print marshals the effective configuration back to YAML.
func (c *Config) Print() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}
