// Package config loads and validates strmatch configuration.
//
// Configuration is applied in order of increasing precedence: hardcoded
// defaults, the user config (~/.config/strmatch/config.yaml), the working
// directory config (.strmatch.yaml), then STRMATCH_* environment variables.
// Command-line flags override all of it and are handled by the cmd layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Aman-CERP/strmatch/internal/errors"
	"github.com/Aman-CERP/strmatch/internal/textenc"
	"github.com/Aman-CERP/strmatch/pkg/matcher"
)

// Config is the root configuration for strmatch.
type Config struct {
	Version   int             `yaml:"version" json:"version"`
	Defaults  DefaultsConfig  `yaml:"defaults" json:"defaults"`
	Directory DirectoryConfig `yaml:"directory" json:"directory"`
	Output    OutputConfig    `yaml:"output" json:"output"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

// DefaultsConfig configures search parameters assumed when flags are absent.
type DefaultsConfig struct {
	// Encoding is the text encoding for file and directory sources.
	Encoding string `yaml:"encoding" json:"encoding"`

	// Algorithm selects the matcher: "boyer-moore" or "naive".
	Algorithm string `yaml:"algorithm" json:"algorithm"`

	// IgnoreCase enables case-insensitive matching by default.
	IgnoreCase bool `yaml:"ignore_case" json:"ignore_case"`
}

// DirectoryConfig configures directory-mode enumeration.
type DirectoryConfig struct {
	// Extensions are the file extensions scanned in directory mode.
	// Dot-prefixed, matched case-insensitively against top-level files.
	Extensions []string `yaml:"extensions" json:"extensions"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format" json:"format"`

	// Color is "auto", "always", or "never".
	Color string `yaml:"color" json:"color"`

	// Progress is "auto", "plain", or "off".
	Progress string `yaml:"progress" json:"progress"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level     string `yaml:"level" json:"level"`
	File      string `yaml:"file" json:"file"`
	MaxSizeMB int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files" json:"max_files"`
}

// NewConfig returns a Config with all defaults applied.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Defaults: DefaultsConfig{
			Encoding:   textenc.DefaultName,
			Algorithm:  matcher.AlgorithmBoyerMoore.String(),
			IgnoreCase: false,
		},
		Directory: DirectoryConfig{
			Extensions: []string{".txt"},
		},
		Output: OutputConfig{
			Format:   "text",
			Color:    "auto",
			Progress: "auto",
		},
		Logging: LoggingConfig{
			Level:     "info",
			File:      "",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

// GetUserConfigPath returns the path of the user configuration file.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "strmatch", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback - should rarely happen
		return filepath.Join(os.TempDir(), ".config", "strmatch", "config.yaml")
	}
	return filepath.Join(home, ".config", "strmatch", "config.yaml")
}

// Load loads configuration starting from the given working directory.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User config (~/.config/strmatch/config.yaml)
//  3. Working directory config (.strmatch.yaml or .strmatch.yml)
//  4. Environment variables (STRMATCH_*)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	userPath := GetUserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadFromDir(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromDir loads .strmatch.yaml (or .yml) from dir if present.
// A missing file is fine - defaults apply.
func (c *Config) loadFromDir(dir string) error {
	for _, name := range []string{".strmatch.yaml", ".strmatch.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return c.loadYAML(path)
		}
	}
	return nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}
	if other.Defaults.Encoding != "" {
		c.Defaults.Encoding = other.Defaults.Encoding
	}
	if other.Defaults.Algorithm != "" {
		c.Defaults.Algorithm = other.Defaults.Algorithm
	}
	if other.Defaults.IgnoreCase {
		c.Defaults.IgnoreCase = true
	}
	if len(other.Directory.Extensions) > 0 {
		c.Directory.Extensions = other.Directory.Extensions
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Color != "" {
		c.Output.Color = other.Output.Color
	}
	if other.Output.Progress != "" {
		c.Output.Progress = other.Output.Progress
	}
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.File != "" {
		c.Logging.File = other.Logging.File
	}
	if other.Logging.MaxSizeMB != 0 {
		c.Logging.MaxSizeMB = other.Logging.MaxSizeMB
	}
	if other.Logging.MaxFiles != 0 {
		c.Logging.MaxFiles = other.Logging.MaxFiles
	}
}

// applyEnvOverrides applies STRMATCH_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STRMATCH_ENCODING"); v != "" {
		c.Defaults.Encoding = v
	}
	if v := os.Getenv("STRMATCH_ALGORITHM"); v != "" {
		c.Defaults.Algorithm = v
	}
	if v := os.Getenv("STRMATCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("STRMATCH_NO_COLOR"); v != "" {
		if strings.ToLower(v) == "true" || v == "1" {
			c.Output.Color = "never"
		}
	}
}

// Validate checks the final configuration.
func (c *Config) Validate() error {
	if _, err := matcher.ParseAlgorithm(c.Defaults.Algorithm); err != nil {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("defaults.algorithm: %v", err), err)
	}

	if _, err := textenc.Resolve(c.Defaults.Encoding); err != nil {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("defaults.encoding: %v", err), err).
			WithSuggestion("run 'strmatch encodings' to list supported names")
	}

	if len(c.Directory.Extensions) == 0 {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			"directory.extensions must not be empty", nil)
	}
	for _, ext := range c.Directory.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return apperrors.New(apperrors.ErrCodeConfigInvalid,
				fmt.Sprintf("directory.extensions entries must start with a dot, got %q", ext), nil)
		}
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Output.Format)] {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("output.format must be 'text' or 'json', got %s", c.Output.Format), nil)
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.Output.Color)] {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("output.color must be 'auto', 'always', or 'never', got %s", c.Output.Color), nil)
	}

	validProgress := map[string]bool{"auto": true, "plain": true, "off": true}
	if !validProgress[strings.ToLower(c.Output.Progress)] {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("output.progress must be 'auto', 'plain', or 'off', got %s", c.Output.Progress), nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return apperrors.New(apperrors.ErrCodeConfigInvalid,
			fmt.Sprintf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level), nil)
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
