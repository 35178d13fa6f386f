//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkInjectAttributes benchmarks attribute injection over post HTML.
// Runs once per post, after rendering.
func BenchmarkInjectAttributes(b *testing.B) {
	ctx := context.Background()

	smallTable := ReplacementTable{"p": {"class": "text-blue-500"}}
	largeTable := ReplacementTable{}
	for _, tag := range []string{"p", "h1", "h2", "h3", "a", "ul", "ol", "li", "pre", "code", "blockquote", "table", "td", "th"} {
		largeTable[tag] = map[string]string{"class": "prose-" + tag, "data-kind": tag}
	}

	smallHTML := "<h1>Title</h1>\n<p>Body</p>\n"
	largeHTML := strings.Repeat("<h2>Section</h2>\n<p>Paragraph with <a href=\"/x\">a link</a> and <code>code</code>.</p>\n<ul>\n<li>item</li>\n</ul>\n", 200)

	inputs := []struct {
		name  string
		table ReplacementTable
		html  string
	}{
		{"small_html_small_table", smallTable, smallHTML},
		{"small_html_large_table", largeTable, smallHTML},
		{"large_html_small_table", smallTable, largeHTML},
		{"large_html_large_table", largeTable, largeHTML},
	}

	for _, input := range inputs {
		injector := NewAttributeInjection(input.table)
		b.Run(fmt.Sprintf("%s_%dB", input.name, len(input.html)), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = injector.InjectAttributes(ctx, input.html)
			}
		})
	}
}

// BenchmarkToHTML benchmarks Goldmark conversion of a typical post body.
func BenchmarkToHTML(b *testing.B) {
	ctx := context.Background()
	conv := NewGoldmarkConverter(DefaultConverterOptions())

	body := "# Title\n\n" + strings.Repeat("Some *text* with `code` and a [link](/x).\n\n```go\nfunc main() {}\n```\n\n", 50)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := conv.ToHTML(ctx, body); err != nil {
			b.Fatal(err)
		}
	}
}
