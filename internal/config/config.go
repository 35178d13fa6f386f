package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2posts/internal/codec"
	"github.com/alnah/go-md2posts/internal/dateutil"
	"github.com/alnah/go-md2posts/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxExtensionLength  = 20   // ".md", ".markdown"
	MaxDateFormatLength = dateutil.MaxDateFormatLength
	MaxDateLabelLength  = 50 // "Date: ", "Published on "
)

// DefaultExtension is the source file extension matched and stripped from titles.
const DefaultExtension = ".md"

// Config holds all configuration for a post build.
// Every field may be overridden by environment variables and CLI flags.
type Config struct {
	Input        string         `yaml:"input"`        // File or directory of posts
	Output       string         `yaml:"output"`       // Directory for per-post JSON
	JS           string         `yaml:"js"`           // Directory for posts.ts (empty = output)
	Replacements string         `yaml:"replacements"` // JSON replacement table path
	Extension    string         `yaml:"extension"`    // Source extension (default: ".md")
	Date         DateConfig     `yaml:"date"`
	Markdown     MarkdownConfig `yaml:"markdown"`
}

// DateConfig defines how the first line of a post is read and how dates are written.
type DateConfig struct {
	Format string `yaml:"format"` // Preset name or tokens (default: "post" = MMMM DD, YYYY)
	Label  string `yaml:"label"`  // Optional prefix before the date (default: "Date: ")
}

// MarkdownConfig selects Goldmark features.
type MarkdownConfig struct {
	GFM        bool `yaml:"gfm"`        // default: true
	Highlight  bool `yaml:"highlight"`  // default: true
	HardWraps  bool `yaml:"hardWraps"`  // default: false
	HeadingIDs bool `yaml:"headingIDs"` // default: false
	Marks      bool `yaml:"marks"`      // ==highlight== syntax, default: false
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Extension: DefaultExtension,
		Date: DateConfig{
			Format: "post",
			Label:  dateutil.DefaultDateLabel,
		},
		Markdown: MarkdownConfig{
			GFM:       true,
			Highlight: true,
		},
	}
}

// Validate checks field lengths and formats.
// Called automatically by LoadConfig, but available for callers that build
// a Config by merging flags and environment variables.
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"input", c.Input},
		{"output", c.Output},
		{"js", c.JS},
		{"replacements", c.Replacements},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("extension", c.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if err := fileutil.ValidateExtension(c.Extension); err != nil {
		return fmt.Errorf("%w: extension: %v", ErrInvalidField, err)
	}

	if err := validateFieldLength("date.label", c.Date.Label, MaxDateLabelLength); err != nil {
		return err
	}
	if _, err := dateutil.CompileFormat(c.Date.Format); err != nil {
		return fmt.Errorf("date.format: %w", err)
	}

	return nil
}

// DateLayout compiles Date.Format.
func (c *Config) DateLayout() (dateutil.Layout, error) {
	return dateutil.CompileFormat(c.Date.Format)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := codec.UnmarshalYAMLStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory first and then
// in the user config directory (~/.config/go-md2posts/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2posts", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
