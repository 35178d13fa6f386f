// Package dateutil converts user-friendly date formats to Go layouts and
// parses the date line that heads every post.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date handling.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDate       = errors.New("invalid date")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultPostDateFormat renders dates as "January 05, 2024".
const DefaultPostDateFormat = "MMMM DD, YYYY"

// DefaultDateLabel is the optional prefix allowed before the date on line one.
const DefaultDateLabel = "Date: "

// dateToken maps a user-friendly token to its Go layout for formatting and
// for parsing. Parse layouts are unpadded so both "5" and "05" are accepted.
type dateToken struct {
	token   string
	goFmt   string
	goParse string
}

// dateTokens is ordered by length descending for greedy matching.
var dateTokens = []dateToken{
	{"YYYY", "2006", "2006"},
	{"MMMM", "January", "January"},
	{"MMM", "Jan", "Jan"},
	{"YY", "06", "06"},
	{"MM", "01", "1"},
	{"DD", "02", "2"},
	{"M", "1", "1"},
	{"D", "2", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"post":     DefaultPostDateFormat,
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout is a compiled date format: one Go layout for output and a lenient
// one for input. ShortParse, when set, is the input layout with full month
// names swapped for abbreviated ones and is tried after Parse.
type Layout struct {
	Format     string
	Parse      string
	ShortParse string
}

// CompileFormat resolves a preset name or token format into a Layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D.
// Use brackets to escape literal text: [Posted] preserves "Posted" literally.
// Any non-token characters outside brackets are preserved as literals.
func CompileFormat(format string) (Layout, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}

	out, err := convert(format, func(t dateToken) string { return t.goFmt })
	if err != nil {
		return Layout{}, err
	}
	in, err := convert(format, func(t dateToken) string { return t.goParse })
	if err != nil {
		return Layout{}, err
	}
	layout := Layout{Format: out, Parse: in}
	if strings.Contains(in, "January") {
		layout.ShortParse = strings.ReplaceAll(in, "January", "Jan")
	}
	return layout, nil
}

// DefaultLayout returns the compiled DefaultPostDateFormat.
func DefaultLayout() Layout {
	l, _ := CompileFormat(DefaultPostDateFormat)
	return l
}

func convert(format string, pick func(dateToken) string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(pick(t))
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ParsePostDate parses the first line of a post.
// Surrounding whitespace is ignored and an optional label prefix is stripped
// before parsing with the layout's lenient input form. Layouts with a full
// month name also accept the abbreviated name ("Jan 05, 2024").
func ParsePostDate(line, label string, layout Layout) (time.Time, error) {
	value := strings.TrimSpace(line)
	if label != "" {
		value = strings.TrimSpace(strings.TrimPrefix(value, label))
	}

	t, err := time.Parse(layout.Parse, value)
	if err != nil && layout.ShortParse != "" {
		t, err = time.Parse(layout.ShortParse, value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// FormatPostDate renders t with the layout's output form.
func FormatPostDate(t time.Time, layout Layout) string {
	return t.Format(layout.Format)
}
