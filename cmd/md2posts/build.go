package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2posts"
	"github.com/alnah/go-md2posts/internal/config"
	"github.com/alnah/go-md2posts/internal/dateutil"
	"github.com/alnah/go-md2posts/internal/fileutil"
	"github.com/alnah/go-md2posts/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingFlag     = errors.New("missing required value")
	ErrInvalidArgs     = errors.New("invalid arguments")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// runBuild resolves configuration and builds every post in the input.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, positional[0])
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	layout, err := cfg.DateLayout()
	if err != nil {
		return err
	}

	table, err := md2posts.LoadReplacements(cfg.Replacements)
	if err != nil {
		return withHint(err, cfg, layout, env)
	}

	paths, err := fileutil.ListSources(cfg.Input, cfg.Extension)
	if err != nil {
		return fmt.Errorf("discovering posts: %w", err)
	}

	jsDir := resolveJSDir(cfg)
	for _, dir := range []string{cfg.Output, jsDir} {
		if err := fileutil.EnsureDir(dir); err != nil {
			return fmt.Errorf("%w: %s: %v%s", ErrCreateOutputDir, dir, err, hints.ForOutputDirectory())
		}
	}

	builder, err := md2posts.NewBuilder(table,
		md2posts.WithExtension(cfg.Extension),
		md2posts.WithDateFormat(cfg.Date.Format),
		md2posts.WithDateLabel(cfg.Date.Label),
		md2posts.WithMarkdown(markdownOptions(cfg.Markdown)),
	)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Found %d post(s) in %s\n", len(paths), cfg.Input)
	}

	start := env.Now()
	result, err := builder.Build(ctx, md2posts.SourcesFromPaths(paths), md2posts.Output{
		Posts: &md2posts.DirWriter{Dir: cfg.Output},
		Index: &md2posts.DirWriter{Dir: jsDir},
	})
	if err != nil {
		return withHint(err, cfg, layout, env)
	}

	printResult(result, flags.common, env.Now().Sub(start), env)
	return nil
}

// resolveConfig merges defaults, config file, environment and flags, then
// validates the result and checks required locations.
func resolveConfig(flags *buildFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(configName) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := requireLocations(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.io.input != "" {
		cfg.Input = flags.io.input
	}
	if flags.io.output != "" {
		cfg.Output = flags.io.output
	}
	if flags.io.js != "" {
		cfg.JS = flags.io.js
	}
	if flags.io.replacements != "" {
		cfg.Replacements = flags.io.replacements
	}
	if flags.post.extension != "" {
		cfg.Extension = flags.post.extension
	}
	if flags.post.dateFormat != "" {
		cfg.Date.Format = flags.post.dateFormat
	}
}

// requireLocations reports every required location left unset.
func requireLocations(cfg *config.Config) error {
	var missing []string
	if cfg.Input == "" {
		missing = append(missing, "--input")
	}
	if cfg.Output == "" {
		missing = append(missing, "--output")
	}
	if cfg.Replacements == "" {
		missing = append(missing, "--replacements")
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s%s", ErrMissingFlag, strings.Join(missing, ", "), hints.ForMissingFlags(missing))
}

// resolveJSDir returns the posts.ts directory, defaulting to the output directory.
func resolveJSDir(cfg *config.Config) string {
	if cfg.JS != "" {
		return cfg.JS
	}
	return cfg.Output
}

// markdownOptions maps config markdown settings to builder options.
func markdownOptions(m config.MarkdownConfig) md2posts.MarkdownOptions {
	return md2posts.MarkdownOptions{
		GFM:        m.GFM,
		Highlight:  m.Highlight,
		HardWraps:  m.HardWraps,
		HeadingIDs: m.HeadingIDs,
		Marks:      m.Marks,
	}
}

// withHint appends an actionable hint to errors that have one.
func withHint(err error, cfg *config.Config, layout dateutil.Layout, env *Environment) error {
	var hint string
	switch {
	case errors.Is(err, md2posts.ErrReplacementsNotFound):
		hint = hints.ForReplacementsNotFound()
	case errors.Is(err, md2posts.ErrReplacementsParse):
		hint = hints.ForReplacementsParse()
	case errors.Is(err, md2posts.ErrInvalidDate), errors.Is(err, md2posts.ErrMissingDateLine):
		hint = hints.ForInvalidDate(cfg.Date.Label, dateutil.FormatPostDate(env.Now(), layout))
	case errors.Is(err, md2posts.ErrMissingHeader):
		hint = hints.ForMissingHeader()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printResult reports written artifacts unless quiet.
func printResult(result *md2posts.BuildResult, flags commonFlags, elapsed time.Duration, env *Environment) {
	if flags.quiet {
		return
	}

	for _, a := range result.Artifacts {
		fmt.Fprintf(env.Stdout, "Created %s\n", a.Path)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", result.Index.Path)

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Built %d post(s) in %v\n", len(result.Posts), elapsed.Round(time.Millisecond))
	}
}
