package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2posts/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "MD2POSTS_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // MD2POSTS_CONFIG: config file name or path
	Input        string // MD2POSTS_INPUT: post file or directory
	Output       string // MD2POSTS_OUTPUT: per-post JSON directory
	JS           string // MD2POSTS_JS: posts.ts directory
	Replacements string // MD2POSTS_REPLACEMENTS: replacement table path
}

// knownEnvVars lists valid MD2POSTS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2POSTS_CONFIG":       true,
	"MD2POSTS_INPUT":        true,
	"MD2POSTS_OUTPUT":       true,
	"MD2POSTS_JS":           true,
	"MD2POSTS_REPLACEMENTS": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath:   getenv("MD2POSTS_CONFIG"),
		Input:        getenv("MD2POSTS_INPUT"),
		Output:       getenv("MD2POSTS_OUTPUT"),
		JS:           getenv("MD2POSTS_JS"),
		Replacements: getenv("MD2POSTS_REPLACEMENTS"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized MD2POSTS_* variables.
// Helps catch typos like MD2POSTS_OUPUT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies set environment variables over config file values.
// CLI flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input = env.Input
	}
	if env.Output != "" {
		cfg.Output = env.Output
	}
	if env.JS != "" {
		cfg.JS = env.JS
	}
	if env.Replacements != "" {
		cfg.Replacements = env.Replacements
	}
}
