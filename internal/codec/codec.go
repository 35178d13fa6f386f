// Package codec wraps JSON and YAML encoding to isolate the external dependencies.
// Callers never import goccy/go-json or goccy/go-yaml directly.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// MaxInputSize limits decoded input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("codec: nil or empty data")
	ErrNilDestination = errors.New("codec: nil destination pointer")
	ErrInputTooLarge  = errors.New("codec: input exceeds maximum size")
)

// jsonIndent matches the two-space layout front-ends diff against.
const jsonIndent = "  "

func validateInput(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalJSON decodes JSON data into v.
func UnmarshalJSON(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	return nil
}

// MarshalJSONIndent encodes v as indented JSON without a trailing newline.
// HTML characters are written verbatim: post bodies are HTML and must stay
// readable in the emitted artifacts.
func MarshalJSONIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalYAMLStrict decodes YAML data into v, rejecting unknown fields.
func UnmarshalYAMLStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	return nil
}
