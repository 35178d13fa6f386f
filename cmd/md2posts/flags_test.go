package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	f, rest, err := parseBuildFlags([]string{
		"-i", "posts", "--output=public/posts", "--js", "src",
		"-r", "r.json", "--ext", ".markdown", "--date-format", "iso",
		"-c", "blog", "-q", "-v",
	})
	if err != nil {
		t.Fatalf("parseBuildFlags() unexpected error: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("positional = %v, want none", rest)
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"input", f.io.input, "posts"},
		{"output", f.io.output, "public/posts"},
		{"js", f.io.js, "src"},
		{"replacements", f.io.replacements, "r.json"},
		{"ext", f.post.extension, ".markdown"},
		{"date-format", f.post.dateFormat, "iso"},
		{"config", f.common.config, "blog"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if !f.common.quiet || !f.common.verbose {
		t.Errorf("quiet = %v, verbose = %v, want both true", f.common.quiet, f.common.verbose)
	}
}

func TestParseBuildFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--pdf"}, ErrInvalidArgs},
		{"missing value", []string{"--input"}, ErrInvalidArgs},
		{"help", []string{"--help"}, flag.ErrHelp},
		{"short help", []string{"-h"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseBuildFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseBuildFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestParseBuildFlags_Positional(t *testing.T) {
	t.Parallel()

	_, rest, err := parseBuildFlags([]string{"-i", "posts", "extra"})
	if err != nil {
		t.Fatalf("parseBuildFlags() unexpected error: %v", err)
	}
	if len(rest) != 1 || rest[0] != "extra" {
		t.Errorf("positional = %v, want [extra]", rest)
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"-v"}, true},
		{[]string{"-i", "posts", "--verbose"}, true},
		{[]string{"--verbose=true"}, true},
		{[]string{"-q"}, false},
		{[]string{"--", "-v"}, false},
	}

	for _, tt := range tests {
		tt := tt
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
