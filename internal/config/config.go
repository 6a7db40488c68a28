// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Defaults applied to fields left empty by both the config file and the
// CLI flags.
const (
	DefaultBuildDir  = "build"
	DefaultReadme    = "README.md"
	DefaultGenerator = "doxygen"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	BuildDir string `json:"build_dir,omitempty"` // Build directory holding coverage.txt (and Doxygen output)
	Readme   string `json:"readme,omitempty"`    // Path to README markdown file

	// Documentation sources
	DocGenerator string   `json:"doc_generator,omitempty"` // Default doc generator kind
	DocPath      string   `json:"doc_path,omitempty"`      // Path override for the default generator
	DocSources   []string `json:"doc_sources,omitempty"`   // Explicit generator=path declarations

	// Thresholds (pointers so "absent" and "0" stay distinct)
	FailUnderDoc  *float64 `json:"fail_under_doc,omitempty" validate:"omitempty,gte=0,lte=100"`
	FailUnderTest *float64 `json:"fail_under_test,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values using the
// struct validation tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyDefaults fills empty fields with their defaults after config file
// values and CLI overrides have been merged.
func (c *Config) ApplyDefaults() {
	if c.BuildDir == "" {
		c.BuildDir = DefaultBuildDir
	}
	if c.Readme == "" {
		c.Readme = DefaultReadme
	}
	if c.DocGenerator == "" {
		c.DocGenerator = DefaultGenerator
	}
}
