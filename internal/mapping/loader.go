package mapping

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
)

// String returns the conventional file extension of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Parse parses a sheet in the given format.
func Parse(data []byte, format Format) (*Sheet, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatTOML:
		return ParseTOML(data)
	default:
		return nil, ErrUnknownFormat
	}
}

// LoadFile loads and parses a sheet, picking the format from the extension.
func LoadFile(path string) (*Sheet, error) {
	format := FormatOf(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", path, err)
	}

	sheet, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sheet.Source = path

	return sheet, nil
}

// LoadDocument decodes a YAML or TOML file into a generic tree.
func LoadDocument(path string) (map[string]any, Format, error) {
	format := FormatOf(path)
	if format == FormatUnknown {
		return nil, format, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, format, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc := map[string]any{}

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	}

	if err != nil {
		return nil, format, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	if doc == nil {
		doc = map[string]any{}
	}

	return doc, format, nil
}

// EncodeDocument writes a generic tree in the given format.
func EncodeDocument(w io.Writer, doc any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}

		return nil
	default:
		return ErrUnknownFormat
	}
}

// WriteDocument encodes doc into the file at path.
func WriteDocument(path string, doc any, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := EncodeDocument(f, doc, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
