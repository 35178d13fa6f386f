package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged and are turned into <mark> tags
// after HTML generation, so raw HTML never has to be enabled.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
	fenceOpen        = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// PostPreprocessor prepares a post body for conversion.
type PostPreprocessor struct {
	// Marks enables ==text== highlight syntax.
	Marks bool
}

// PreprocessMarkdown normalizes line endings and, when enabled, converts
// ==text== outside code to highlight placeholders. Blank lines are kept
// as written.
func (p *PostPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	if p.Marks {
		content = convertHighlights(content)
	}
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// convertHighlights replaces ==text== with placeholders, leaving fenced
// code blocks, indented code blocks and code spans untouched.
func convertHighlights(content string) string {
	lines := strings.Split(content, "\n")
	fence := ""
	prevBlank, indented := true, false

	for i, line := range lines {
		blank := strings.TrimSpace(line) == ""
		switch {
		case fence != "":
			if closesFence(line, fence) {
				fence = ""
			}
		case fenceOpen.MatchString(line):
			fence = fenceOpen.FindStringSubmatch(line)[1]
			indented = false
		case !blank && isIndentedCode(line) && (prevBlank || indented):
			indented = true
		default:
			if !blank {
				indented = false
			}
			lines[i] = markOutsideCodeSpans(line)
		}
		prevBlank = blank
	}
	return strings.Join(lines, "\n")
}

func isIndentedCode(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// closesFence reports whether line ends a block opened by fence: the same
// character, at least as many times, indented at most three spaces.
func closesFence(line, fence string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	run := runLength(trimmed, fence[0])
	return run >= len(fence) && strings.TrimSpace(trimmed[run:]) == ""
}

// markOutsideCodeSpans converts highlights in line except inside code spans.
// A backtick run with no closing run of equal length is plain text.
func markOutsideCodeSpans(line string) string {
	var b strings.Builder
	plain := 0
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		n := runLength(line[i:], '`')
		end := closingRun(line[i+n:], n)
		if end < 0 {
			i += n
			continue
		}
		spanEnd := i + n + end + n
		b.WriteString(markHighlights(line[plain:i]))
		b.WriteString(line[i:spanEnd])
		i, plain = spanEnd, spanEnd
	}
	b.WriteString(markHighlights(line[plain:]))
	return b.String()
}

func markHighlights(text string) string {
	return highlightPattern.ReplaceAllString(text, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

func runLength(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// closingRun returns the offset of the first backtick run in s of exactly
// n backticks, or -1.
func closingRun(s string, n int) int {
	for i := 0; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		m := runLength(s[i:], '`')
		if m == n {
			return i
		}
		i += m
	}
	return -1
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}
