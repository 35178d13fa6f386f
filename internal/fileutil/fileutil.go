// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: artifacts are served to front-ends
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNoSources              = errors.New("no source files found")
)

// ValidateExtension checks that a source extension is safe to match and strip.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ListSources returns the source files named by input.
// A regular file is returned as-is regardless of its extension. A directory
// yields its direct regular-file children ending in extension, in directory
// read order (lexical by name). Subdirectories are not descended into.
func ListSources(input, extension string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", input, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		files = append(files, filepath.Join(input, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s (extension %q)", ErrNoSources, input, extension)
	}
	return files, nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPermissions)
}

// WriteFile writes data to path with FilePermissions.
func WriteFile(path string, data []byte) error {
	// #nosec G306 -- artifacts are meant to be readable
	return os.WriteFile(path, data, FilePermissions)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "blog" -> false (name)
//   - "./blog.yaml" -> true (relative path)
//   - "/etc/md2posts/blog.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
