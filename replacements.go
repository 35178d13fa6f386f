package md2posts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-md2posts/internal/codec"
)

// LoadReplacements reads a replacement table from a JSON file.
func LoadReplacements(path string) (ReplacementTable, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReplacementsNotFound, path)
		}
		return nil, fmt.Errorf("reading replacement table: %w", err)
	}

	table, err := ParseReplacements(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseReplacements decodes a JSON object mapping tag names to objects
// mapping attribute names to string values.
func ParseReplacements(data []byte) (ReplacementTable, error) {
	var table ReplacementTable
	if err := codec.UnmarshalJSON(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReplacementsParse, err)
	}
	if table == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrReplacementsParse)
	}
	return table, nil
}
