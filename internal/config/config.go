package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration structure.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Report  ReportConfig  `yaml:"report"`
	Rules   Rules         `yaml:"rules"`
}

// ProjectConfig locates the project tree being measured.
type ProjectConfig struct {
	Root     string `yaml:"root"`
	DepsDir  string `yaml:"depsDir"`
	Manifest string `yaml:"manifest"`
}

// ReportConfig holds the two-slot report persistence paths.
type ReportConfig struct {
	Output string `yaml:"output"`
	Backup string `yaml:"backup"`
}

// Rules holds the recommendation rules.
type Rules struct {
	DepsBloat DepsBloatRule `yaml:"deps_bloat"`
}

// DepsBloatRule flags an oversized dependency directory.
type DepsBloatRule struct {
	SizeThreshold int64 `yaml:"size_threshold"` // bytes
}

// Default returns the configuration used when no config file is present.
// The report command takes no required arguments, so every field has a
// working default relative to the current directory.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Root:     ".",
			DepsDir:  "node_modules",
			Manifest: "package.json",
		},
		Report: ReportConfig{
			Output: "DISK_USAGE_REPORT.md",
			Backup: "DISK_USAGE_REPORT.md.bak",
		},
		Rules: Rules{
			DepsBloat: DepsBloatRule{SizeThreshold: 500 * 1024 * 1024},
		},
	}
}

// Load reads and parses the config file. A missing file is not an error:
// the defaults are returned so the tool stays zero-configuration.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if err := c.Project.Validate(); err != nil {
		return err
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	return c.Rules.Validate()
}

// Validate checks the ProjectConfig for correctness.
func (p *ProjectConfig) Validate() error {
	if p.Root == "" {
		return fmt.Errorf("project root cannot be empty")
	}
	if p.DepsDir == "" {
		return fmt.Errorf("project depsDir cannot be empty")
	}
	if p.Manifest == "" {
		return fmt.Errorf("project manifest cannot be empty")
	}
	return nil
}

// Validate checks the ReportConfig for correctness.
func (r *ReportConfig) Validate() error {
	if r.Output == "" {
		return fmt.Errorf("report output path cannot be empty")
	}
	if r.Backup == "" {
		return fmt.Errorf("report backup path cannot be empty")
	}
	if filepath.Clean(r.Output) == filepath.Clean(r.Backup) {
		return fmt.Errorf("report output and backup must be different paths")
	}
	return nil
}

// Validate checks the Rules for correctness.
func (r *Rules) Validate() error {
	return r.DepsBloat.Validate()
}

// Validate checks the DepsBloatRule for correctness.
func (d *DepsBloatRule) Validate() error {
	if d.SizeThreshold < 0 {
		return fmt.Errorf("deps_bloat size_threshold must not be negative, got %d", d.SizeThreshold)
	}
	return nil
}
