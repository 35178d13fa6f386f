package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every build.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds input and output location flags.
type ioFlags struct {
	input        string
	output       string
	js           string
	replacements string
}

// postFlags holds flags describing the post source format.
type postFlags struct {
	extension  string
	dateFormat string
}

// buildFlags holds all flags for a build.
type buildFlags struct {
	common commonFlags
	io     ioFlags
	post   postFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addIOFlags adds input and output flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "post file or directory of posts")
	fs.StringVarP(&f.output, "output", "o", "", "directory for per-post JSON")
	fs.StringVar(&f.js, "js", "", "directory for posts.ts (default: output)")
	fs.StringVarP(&f.replacements, "replacements", "r", "", "JSON replacement table")
}

// addPostFlags adds post format flags to a FlagSet.
func addPostFlags(fs *flag.FlagSet, f *postFlags) {
	fs.StringVar(&f.extension, "ext", "", "source extension (default: .md)")
	fs.StringVar(&f.dateFormat, "date-format", "", "date tokens or preset: post, iso, european, us, long")
}

// buildFlagSet registers every build flag on a new FlagSet bound to f.
// Parsing and completion share it so the two cannot drift.
func buildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2posts", flag.ContinueOnError)
	addIOFlags(fs, &f.io)
	addPostFlags(fs, &f.post)
	addCommonFlags(fs, &f.common)
	return fs
}

// parseBuildFlags parses build flags and returns positional args.
// Returns flag.ErrHelp for -h/--help.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := buildFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether -v or --verbose appears before any "--".
// Used before full parsing to configure runtime logging.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose", "--verbose=true":
			return true
		}
	}
	return false
}
