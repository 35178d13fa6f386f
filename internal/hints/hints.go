// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2posts") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForReplacementsNotFound returns a hint for a missing replacement table.
func ForReplacementsNotFound() string {
	return format(`pass --replacements with a JSON object such as {"p": {"class": "lead"}}`)
}

// ForReplacementsParse returns a hint describing the expected table shape.
func ForReplacementsParse() string {
	return format("expected {\"tag\": {\"attribute\": \"value\"}} with string values only")
}

// ForInvalidDate returns a hint showing the expected first line of a post.
// example is today's date rendered in the configured format.
func ForInvalidDate(label, example string) string {
	if example == "" {
		return ""
	}
	return format("first line must look like " + strings.TrimSpace(label+example))
}

// ForMissingHeader returns a hint for posts whose body renders to a single line.
func ForMissingHeader() string {
	return format("start the body with a heading, e.g. \"# Title\", followed by content")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMissingFlags returns a hint listing where required values can come from.
func ForMissingFlags(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return formatHints([]string{
		"set " + strings.Join(names, ", "),
		"or use MD2POSTS_* environment variables or a --config file",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, " "))
}
