package md2posts

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-md2posts/internal/codec"
	"github.com/alnah/go-md2posts/internal/dateutil"
	"github.com/alnah/go-md2posts/internal/fileutil"
	"github.com/alnah/go-md2posts/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.PostPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.AttributeInjector    = (*pipeline.AttributeInjection)(nil)
	_ ArtifactWriter                = (*DirWriter)(nil)
)

// Builder assembles posts and emits their artifacts.
// A Builder holds only read-only state and may be reused across builds.
type Builder struct {
	cfg          builderConfig
	layout       dateutil.Layout
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
	injector     pipeline.AttributeInjector
}

// NewBuilder creates a Builder that injects attributes from table.
// Returns error if the extension or date format is invalid.
func NewBuilder(table ReplacementTable, opts ...Option) (*Builder, error) {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := fileutil.ValidateExtension(cfg.extension); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtension, err)
	}

	layout, err := dateutil.CompileFormat(cfg.dateFormat)
	if err != nil {
		return nil, err
	}

	return &Builder{
		cfg:          cfg,
		layout:       layout,
		preprocessor: &pipeline.PostPreprocessor{Marks: cfg.markdown.Marks},
		converter: pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
			GFM:        cfg.markdown.GFM,
			Highlight:  cfg.markdown.Highlight,
			HardWraps:  cfg.markdown.HardWraps,
			HeadingIDs: cfg.markdown.HeadingIDs,
		}),
		injector: pipeline.NewAttributeInjection(table),
	}, nil
}

// DateLayout returns the Go layout used to render PublicPost.Date.
func (b *Builder) DateLayout() string {
	return b.layout.Format
}

// Extension returns the configured source extension.
func (b *Builder) Extension() string {
	return b.cfg.extension
}

// Assemble parses one source into a Post.
//
// The first line must hold the date, optionally preceded by the date label.
// The rest is rendered to HTML, run through the attribute injector, and split
// at the first newline into Header and Body. Every error names the source.
func (b *Builder) Assemble(ctx context.Context, name, content string) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}

	content = pipeline.NormalizeLineEndings(content)

	dateLine, markdown, ok := strings.Cut(content, "\n")
	if !ok {
		return Post{}, fmt.Errorf("%s: %w", name, ErrMissingDateLine)
	}

	date, err := dateutil.ParsePostDate(dateLine, b.cfg.dateLabel, b.layout)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}

	markdown = b.preprocessor.PreprocessMarkdown(ctx, markdown)

	html, err := b.converter.ToHTML(ctx, markdown)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}
	if b.cfg.markdown.Marks {
		html = pipeline.ConvertMarkPlaceholders(html)
	}
	html = b.injector.InjectAttributes(ctx, html)

	header, body, ok := strings.Cut(html, "\n")
	if !ok {
		return Post{}, fmt.Errorf("%s: %w", name, ErrMissingHeader)
	}

	return Post{
		Title:  titleFromName(name, b.cfg.extension),
		Date:   date,
		Header: header,
		Body:   body,
	}, nil
}

// titleFromName removes the first occurrence of ext from name.
// "a.md.md" becomes "a.md" and "x.mdown.md" becomes "xown.md": the
// replacement is positional, not a suffix strip.
func titleFromName(name, ext string) string {
	return strings.Replace(name, ext, "", 1)
}

// SortPosts orders posts newest first. Posts sharing a date keep their
// relative order.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}

// Build reads and assembles every source in order, sorts the posts newest
// first, then writes one JSON artifact per post and the title index.
//
// The first failure aborts the build. Nothing is written until every source
// has been assembled; artifacts written before an emission failure remain.
func (b *Builder) Build(ctx context.Context, sources []Source, out Output) (*BuildResult, error) {
	posts := make([]Post, 0, len(sources))

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(src.Path) // #nosec G304 -- discovered path
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadSource, src.Path, err)
		}

		post, err := b.Assemble(ctx, src.Name, string(content))
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	SortPosts(posts)

	return b.Emit(posts, out)
}

// Emit writes posts in the given order followed by the title index.
func (b *Builder) Emit(posts []Post, out Output) (*BuildResult, error) {
	if out.Posts == nil {
		return nil, fmt.Errorf("%w: no writer for post artifacts", ErrWriteArtifact)
	}

	result := &BuildResult{
		Posts:     posts,
		Artifacts: make([]Artifact, 0, len(posts)),
	}
	titles := make([]string, 0, len(posts))

	for _, post := range posts {
		data, err := codec.MarshalJSONIndent(post.Public(b.layout.Format))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSerialization, post.Title, err)
		}

		name := post.Title + PostArtifactExtension
		path, err := out.Posts.WriteArtifact(name, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrWriteArtifact, name, err)
		}

		result.Artifacts = append(result.Artifacts, Artifact{Title: post.Title, Path: path})
		titles = append(titles, post.Title)
	}

	index, err := RenderIndex(titles)
	if err != nil {
		return nil, err
	}

	indexWriter := out.Index
	if indexWriter == nil {
		indexWriter = out.Posts
	}
	path, err := indexWriter.WriteArtifact(IndexArtifactName, index)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteArtifact, IndexArtifactName, err)
	}
	result.Index = Artifact{Path: path}

	return result, nil
}
