// Package config holds the mandala CLI configuration: where profile
// files live, which grid loads when no flag asks for one, and how
// output renders. Settings come from a YAML file with MANDALA_*
// environment variables layered on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all mandala configuration.
type Config struct {
	// ProfileDir is the directory the profiles and watch commands scan.
	ProfileDir string `yaml:"profile_dir" env:"MANDALA_PROFILE_DIR"`

	// DefaultProfile names the grid loaded when no --profile or --preset
	// flag is given: a preset name or a profile path. Empty means the
	// built-in default grid.
	DefaultProfile string `yaml:"default_profile" env:"MANDALA_PROFILE"`

	// Theme picks the color palette: auto, dark, or light.
	Theme string `yaml:"theme" env:"MANDALA_THEME"`

	// WordWrap is the column width for rendered markdown.
	WordWrap int `yaml:"word_wrap" env:"MANDALA_WORD_WRAP"`

	// DemoTask is the sample task the demo view feeds the prompt builder.
	DemoTask string `yaml:"demo_task" env:"MANDALA_DEMO_TASK"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ProfileDir: filepath.Join(baseDir(), "profiles"),
		Theme:      "auto",
		WordWrap:   80,
		DemoTask:   "Should I open-source this framework?",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join(baseDir(), "config.yaml")
}

// Load reads configuration from a YAML file, then applies environment
// overrides. A missing file is not an error; defaults plus environment
// win in that case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ValidThemes lists the accepted theme names.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validTheme := false
	for _, t := range ValidThemes {
		if c.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, ValidThemes)
	}
	if c.WordWrap < 0 {
		return fmt.Errorf("invalid word_wrap: %d (cannot be negative)", c.WordWrap)
	}
	return nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// baseDir returns the mandala home: $MANDALA_HOME when set, otherwise
// ~/.mandala.
func baseDir() string {
	if dir := os.Getenv("MANDALA_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(homeDir(), ".mandala")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
