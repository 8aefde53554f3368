// Package models defines data structures for configuration and snapshots.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Config holds runtime configuration for snapshot operations.
// Values come from an optional YAML file; CLI flags override them.
type Config struct {
	PreserveNestedTables bool   `yaml:"preserve_nested_tables"`
	Enrich               bool   `yaml:"enrich"`
	TagCount             int    `yaml:"tag_count"`
	Format               string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		PreserveNestedTables: false,
		Enrich:               true,
		TagCount:             5,
		Format:               FormatMarkdown,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed by the YAML types alone.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatMarkdown, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q: expected markdown, json or yaml", c.Format)
	}
	if c.TagCount < 0 {
		return fmt.Errorf("invalid tag_count %d: must not be negative", c.TagCount)
	}
	return nil
}
