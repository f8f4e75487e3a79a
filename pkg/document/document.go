// Package document parses profile files into a generic tree of
// map[string]any, []any and scalar values. The tree carries no knowledge of
// profile fields; pkg/profile turns it into typed values.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies a profile file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// Extensions lists the recognized profile extensions in lookup order.
var Extensions = []string{".yaml", ".yml", ".toml", ".json", ".jsonc"}

// ParseError reports a document that could not be parsed.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid %s document: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("invalid %s document %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatFor maps a file name to its format by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// Load reads and parses the file at path.
func Load(path string) (any, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	tree, err := Parse(data, format)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return tree, nil
}

// Parse decodes data in the given format. An empty document yields nil.
func Parse(data []byte, format Format) (any, error) {
	var tree any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
	case FormatTOML:
		// TOML documents are always tables.
		table := map[string]any{}
		if _, err := toml.Decode(string(data), &table); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
		tree = table
	case FormatJSON:
		stripped := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(stripped)) == 0 {
			return nil, nil
		}
		if err := json.Unmarshal(stripped, &tree); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return tree, nil
}
