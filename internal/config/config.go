// Package config provides configuration loading for haikumator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// LogLevels lists the accepted values for log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the complete haikumator configuration
type Config struct {
	Lexicons LexiconConfig `yaml:"lexicons"`
	// Seed fixes the random source for the random policies (0 = time based)
	Seed uint64 `yaml:"seed,omitempty"`
	// OutputDir is the default batch output directory
	OutputDir string `yaml:"output_dir,omitempty"`
	// Theme is the TUI color scheme name
	Theme string    `yaml:"theme"`
	Log   LogConfig `yaml:"log"`
}

// LexiconConfig names the default lexicon files
type LexiconConfig struct {
	Synonyms string `yaml:"synonyms,omitempty"`
	Antonyms string `yaml:"antonyms,omitempty"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
	// File sends logs to the data directory instead of stderr
	File bool `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme: "default",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", LogLevels, c.Log.Level)
	}
	if c.Theme == "" {
		return fmt.Errorf("theme is required")
	}
	return nil
}

// LoadFromFile loads a single configuration layer from a YAML file. Fields
// absent from the file stay zero so Merge leaves lower layers alone.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Lexicons.Synonyms != "" {
		c.Lexicons.Synonyms = other.Lexicons.Synonyms
	}
	if other.Lexicons.Antonyms != "" {
		c.Lexicons.Antonyms = other.Lexicons.Antonyms
	}
	if other.Seed != 0 {
		c.Seed = other.Seed
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if other.Theme != "" {
		c.Theme = other.Theme
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File {
		c.Log.File = true
	}
}
