// Package pipeline implements the Markdown-to-HTML stages of a post build.
//
// A post body flows through three stages:
//   - Markdown preprocessing (line normalization, optional ==highlight== syntax)
//   - Markdown to HTML fragment conversion via Goldmark
//   - Attribute injection: configured attributes appended to opening tags
//
// Attribute injection is a regular-expression pass over the rendered HTML,
// not a DOM rewrite. Splitting the result into header and body, ordering
// posts, and writing artifacts is handled by the root md2posts package.
package pipeline
