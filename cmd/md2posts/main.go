package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	setMaxProcs(hasVerboseFlag(os.Args[1:]), env.Stderr)
	os.Exit(runMain(os.Args, env))
}

// setMaxProcs configures GOMAXPROCS, logging the decision when verbose.
func setMaxProcs(verbose bool, w io.Writer) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case "version", "help", "completion":
		return true
	}
	return false
}

// runMain dispatches args and returns the process exit code.
// Anything that is not a subcommand is treated as build flags.
func runMain(args []string, env *Environment) int {
	if len(args) > 1 && isCommand(args[1]) {
		switch args[1] {
		case "version":
			fmt.Fprintf(env.Stdout, "md2posts %s\n", Version)
			return ExitSuccess
		case "help":
			if !runHelp(args[2:], env) {
				return ExitUsage
			}
			return ExitSuccess
		case "completion":
			return report(runCompletion(args[2:], env), env)
		}
	}

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	err := runBuild(context.Background(), rest, env)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if errors.Is(err, ErrMissingFlag) && len(rest) == 0 {
		printUsage(env.Stderr)
		fmt.Fprintln(env.Stderr)
	}
	return report(err, env)
}

// report prints err as a diagnostic and returns its exit code.
func report(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}
