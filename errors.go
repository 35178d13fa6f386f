package md2posts

import (
	"errors"

	"github.com/alnah/go-md2posts/internal/dateutil"
	"github.com/alnah/go-md2posts/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Replacement table errors.
	ErrReplacementsNotFound = errors.New("replacement table not found")
	ErrReplacementsParse    = errors.New("invalid replacement table")

	// Builder option errors.
	ErrInvalidExtension  = errors.New("invalid source extension")
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat

	// Post format errors, always reported with the offending file name.
	ErrMissingDateLine = errors.New("no date on the first line")
	ErrInvalidDate     = dateutil.ErrInvalidDate
	ErrMissingHeader   = errors.New("no header line after rendering")
	ErrHTMLConversion  = pipeline.ErrHTMLConversion

	// Emission errors.
	ErrSerialization = errors.New("post serialization failed")

	// I/O errors.
	ErrReadSource    = errors.New("failed to read source file")
	ErrWriteArtifact = errors.New("failed to write artifact")
)
