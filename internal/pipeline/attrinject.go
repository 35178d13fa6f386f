package pipeline

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// ReplacementTable maps an HTML tag name to the attributes injected into
// every opening tag of that name. Built once per run and only read afterwards.
type ReplacementTable map[string]map[string]string

// openingTagPattern matches "<", a tag name, any text up to the next ">", and ">".
// Captures: 1=tag name, 2=attribute text (verbatim, may be empty).
// This is a lexical match, not a parse: a ">" inside an attribute value ends
// the match early, and [^>] happily spans line breaks.
var openingTagPattern = regexp.MustCompile(`<(\w+)([^>]*)>`)

// AttributeInjector defines the contract for attribute injection into HTML.
type AttributeInjector interface {
	InjectAttributes(ctx context.Context, htmlContent string) string
}

// AttributeInjection appends configured attributes to matching opening tags.
type AttributeInjection struct {
	table ReplacementTable
}

// NewAttributeInjection creates an injector bound to table.
func NewAttributeInjection(table ReplacementTable) *AttributeInjection {
	return &AttributeInjection{table: table}
}

// InjectAttributes applies the bound table to htmlContent.
// Returns htmlContent unchanged if the context is already canceled.
func (a *AttributeInjection) InjectAttributes(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return htmlContent
	}
	return InjectAttributes(a.table, htmlContent)
}

// InjectAttributes rewrites every opening tag whose name is a key of table by
// appending one ` name="value"` per configured attribute after the original
// attribute text. Tags not in the table are left byte-identical.
//
// Existing attributes are never inspected: a configured attribute that is
// already present ends up twice, and running the result through again
// appends another copy. Attributes are appended in name order. Values are
// written as configured, without escaping.
func InjectAttributes(table ReplacementTable, htmlContent string) string {
	if len(table) == 0 {
		return htmlContent
	}

	// Render each tag's suffix once per call.
	suffixes := make(map[string]string, len(table))
	for tag, attrs := range table {
		suffixes[tag] = renderAttributes(attrs)
	}

	return openingTagPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		sub := openingTagPattern.FindStringSubmatch(match)
		suffix, ok := suffixes[sub[1]]
		if !ok {
			return match
		}
		return "<" + sub[1] + sub[2] + suffix + ">"
	})
}

// renderAttributes formats attrs as ` name="value"` fragments sorted by name.
func renderAttributes(attrs map[string]string) string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf strings.Builder
	for _, name := range names {
		buf.WriteString(" ")
		buf.WriteString(name)
		buf.WriteString(`="`)
		buf.WriteString(attrs[name])
		buf.WriteString(`"`)
	}
	return buf.String()
}
