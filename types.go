package md2posts

import (
	"path/filepath"
	"time"

	"github.com/alnah/go-md2posts/internal/dateutil"
	"github.com/alnah/go-md2posts/internal/pipeline"
)

// ReplacementTable maps an HTML tag name to the attributes appended to each
// of its opening tags, e.g. {"p": {"class": "text-blue-500"}}.
type ReplacementTable = pipeline.ReplacementTable

// Artifact names and extensions.
const (
	PostArtifactExtension = ".json"
	IndexArtifactName     = "posts.ts"
)

// DefaultDateLayout is the Go layout used for PublicPost.Date ("January 05, 2024").
const DefaultDateLayout = "January 02, 2006"

// Post is a fully assembled post, before serialization.
type Post struct {
	Title  string
	Date   time.Time
	Header string // first line of the rendered HTML
	Body   string // remaining HTML
}

// PublicPost is the serialized form of a Post.
type PublicPost struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Header string `json:"header"`
	Body   string `json:"body"`
}

// Public projects p for serialization, rendering Date with the Go layout.
func (p Post) Public(layout string) PublicPost {
	return PublicPost{
		Title:  p.Title,
		Date:   p.Date.Format(layout),
		Header: p.Header,
		Body:   p.Body,
	}
}

// Source is one input file.
type Source struct {
	Name string // identifying name, used for the title and in diagnostics
	Path string // location read from disk
}

// SourcesFromPaths builds Sources named after each path's base name, keeping order.
func SourcesFromPaths(paths []string) []Source {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Name: filepath.Base(p), Path: p}
	}
	return sources
}

// Artifact describes one written output file.
type Artifact struct {
	Title string // post title; empty for the index
	Path  string
}

// BuildResult holds what a build produced, in emission order.
type BuildResult struct {
	Posts     []Post
	Artifacts []Artifact
	Index     Artifact
}

// MarkdownOptions selects Goldmark features for post bodies.
type MarkdownOptions struct {
	GFM        bool // tables, strikethrough, autolinks, task lists, footnotes
	Highlight  bool // chroma syntax highlighting with CSS classes
	HardWraps  bool // treat newlines as <br>
	HeadingIDs bool // generate id attributes on headings
	Marks      bool // ==text== renders as <mark>
}

// DefaultMarkdownOptions enables GFM and syntax highlighting.
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{GFM: true, Highlight: true}
}

// Option configures a Builder.
type Option func(*builderConfig)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	extension  string
	dateFormat string
	dateLabel  string
	markdown   MarkdownOptions
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{
		extension:  ".md",
		dateFormat: dateutil.DefaultPostDateFormat,
		dateLabel:  dateutil.DefaultDateLabel,
		markdown:   DefaultMarkdownOptions(),
	}
}

// WithExtension sets the substring removed from source names to form titles
// and matched when discovering sources (default ".md").
func WithExtension(ext string) Option {
	return func(c *builderConfig) {
		c.extension = ext
	}
}

// WithDateFormat sets the date format as a preset name ("post", "iso",
// "european", "us", "long") or tokens (YYYY, YY, MMMM, MMM, MM, M, DD, D).
// It governs both the first line of each post and PublicPost.Date.
func WithDateFormat(format string) Option {
	return func(c *builderConfig) {
		c.dateFormat = format
	}
}

// WithDateLabel sets the optional prefix stripped before the date (default "Date: ").
// An empty label disables stripping.
func WithDateLabel(label string) Option {
	return func(c *builderConfig) {
		c.dateLabel = label
	}
}

// WithMarkdown sets the Goldmark features used for post bodies.
func WithMarkdown(opts MarkdownOptions) Option {
	return func(c *builderConfig) {
		c.markdown = opts
	}
}
