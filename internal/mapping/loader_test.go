package mapping

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("sheet.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("SHEET.YML"))
	assert.Equal(t, FormatTOML, FormatOf("dir/sheet.toml"))
	assert.Equal(t, FormatUnknown, FormatOf("sheet.json"))
	assert.Equal(t, "toml", FormatTOML.String())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "sheet.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("customer:\n  name: Alice\n"), 0o600))

	sheet, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, yamlPath, sheet.Source)
	assert.Equal(t, []Assignment{{Path: "customer.name", Value: "Alice"}}, sheet.Assignments)

	tomlPath := filepath.Join(dir, "sheet.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[customer]\nname = \"Bob\"\n"), 0o600))

	sheet, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, []Assignment{{Path: "customer.name", Value: "Bob"}}, sheet.Assignments)

	_, err = LoadFile(filepath.Join(dir, "sheet.json"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"doc.yaml", "doc.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			format := FormatOf(path)

			doc := map[string]any{
				"customer": map[string]any{"name": "Alice"},
			}

			require.NoError(t, WriteDocument(path, doc, format))

			loaded, gotFormat, err := LoadDocument(path)
			require.NoError(t, err)
			assert.Equal(t, format, gotFormat)
			assert.Equal(t, doc, loaded)
		})
	}
}

func TestEncodeDocument_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, EncodeDocument(&buf, map[string]any{"a": map[string]any{"b": 1}}, FormatYAML))
	assert.Equal(t, "a:\n  b: 1\n", buf.String())

	require.ErrorIs(t, EncodeDocument(&buf, nil, FormatUnknown), ErrUnknownFormat)
}
