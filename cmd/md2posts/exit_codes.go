package main

import (
	"errors"
	"os"

	"github.com/alnah/go-md2posts"
	"github.com/alnah/go-md2posts/internal/config"
	"github.com/alnah/go-md2posts/internal/fileutil"
)

// Exit codes for md2posts CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess       = 0 // All artifacts written
	ExitGeneral       = 1 // General/unexpected error
	ExitUsage         = 2 // Invalid flags, config, or replacement table
	ExitIO            = 3 // File not found, permission denied, write failure
	ExitInputFormat   = 4 // Post without a date line or header
	ExitSerialization = 5 // Post could not be encoded
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Input format errors (exit 4)
	if errors.Is(err, md2posts.ErrMissingDateLine) ||
		errors.Is(err, md2posts.ErrInvalidDate) ||
		errors.Is(err, md2posts.ErrMissingHeader) ||
		errors.Is(err, md2posts.ErrHTMLConversion) {
		return ExitInputFormat
	}

	// Serialization errors (exit 5)
	if errors.Is(err, md2posts.ErrSerialization) {
		return ExitSerialization
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2posts.ErrReplacementsNotFound) ||
		errors.Is(err, md2posts.ErrReplacementsParse) ||
		errors.Is(err, md2posts.ErrInvalidExtension) ||
		errors.Is(err, md2posts.ErrInvalidDateFormat) ||
		errors.Is(err, ErrMissingFlag) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2posts.ErrReadSource) ||
		errors.Is(err, md2posts.ErrWriteArtifact) ||
		errors.Is(err, fileutil.ErrNoSources) ||
		errors.Is(err, ErrCreateOutputDir) {
		return ExitIO
	}

	return ExitGeneral
}
