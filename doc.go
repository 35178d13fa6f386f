// Package md2posts turns a directory of dated Markdown posts into static JSON
// artifacts for a front-end blog.
//
// # Quick Start
//
// Build every post in a directory and write the artifacts:
//
//	table, err := md2posts.LoadReplacements("replacements.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := md2posts.NewBuilder(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Build(ctx, md2posts.SourcesFromPaths(paths), md2posts.Output{
//	    Posts: &md2posts.DirWriter{Dir: "public/posts"},
//	    Index: &md2posts.DirWriter{Dir: "src"},
//	})
//
// # Post Format
//
// The first line of a post holds its date, optionally labeled:
//
//	Date: January 5, 2024
//	# Hello
//
//	Some text.
//
// The remaining Markdown is rendered with Goldmark. The first line of the
// rendered HTML becomes the post header and the rest its body.
//
// # Attribute Injection
//
// A ReplacementTable appends attributes to every opening tag of the listed
// names. Given {"p": {"class": "text-blue-500"}}, "<p>hi</p>" becomes
// `<p class="text-blue-500">hi</p>`. Existing attributes are kept, so
// injection is not idempotent.
//
// # Artifacts
//
// Each post is written as <title>.json with fields title, date, header and
// body. The index posts.ts lists titles newest first after a TypeScript type
// declaration for the post shape.
//
// # Error Handling
//
// Errors wrap sentinel values and can be checked with errors.Is:
//
//	if errors.Is(err, md2posts.ErrInvalidDate) {
//	    // first line did not parse as a date
//	}
//
// The first failing post aborts the build before anything is written.
package md2posts
