package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2posts [flags]")
	fmt.Fprintln(w, "       md2posts <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build dated markdown posts into per-post JSON and a posts.ts title index.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	printBuildFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2posts help <command>' for details on a specific command.")
}

// printBuildFlags prints the build flag reference.
func printBuildFlags(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>         Post file or directory of posts")
	fmt.Fprintln(w, "  -o, --output <dir>         Directory for <title>.json (created if absent)")
	fmt.Fprintln(w, "      --js <dir>             Directory for posts.ts (default: output)")
	fmt.Fprintln(w, "  -r, --replacements <path>  JSON table: {\"tag\": {\"attr\": \"value\"}}")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Posts:")
	fmt.Fprintln(w, "      --ext <s>              Source extension (default: .md)")
	fmt.Fprintln(w, "      --date-format <s>      Date on line one and in JSON (default: post)")
	fmt.Fprintln(w, "                             Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                             Presets (case-insensitive): post, iso, european, us, long")
	fmt.Fprintln(w, "                             Use [text] to escape literals: [Posted] YYYY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2POSTS_CONFIG, MD2POSTS_INPUT, MD2POSTS_OUTPUT, MD2POSTS_JS, MD2POSTS_REPLACEMENTS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a specific command.
// Returns false when the command is unknown.
func runHelp(args []string, env *Environment) bool {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return true
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2posts version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2posts help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return false
	}
	return true
}
