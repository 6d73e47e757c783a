package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-graph/property"
)

// run executes the CLI in-process and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestGetCommand(t *testing.T) {
	doc := writeFile(t, "config.yaml", "server:\n  http:\n    port: 8080\n")

	out, err := run(t, "get", doc, "server.http.port")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)

	out, err = run(t, "get", doc, "server.http")
	require.NoError(t, err)
	assert.Equal(t, "port: 8080\n", out)

	out, err = run(t, "--dump", "get", doc, "server.http.port")
	require.NoError(t, err)
	assert.Equal(t, "(int) 8080\n", out)

	_, err = run(t, "get", doc, "server.grpc.port")
	require.ErrorIs(t, err, property.ErrAccessFailed)

	out, err = run(t, "get", doc, "server.grpc.port", "--default", "none")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

func TestSetCommand(t *testing.T) {
	doc := writeFile(t, "config.toml", "[server]\nhost = \"localhost\"\n")

	out, err := run(t, "set", doc, "server.port=9090", "server.tls.enabled=true", "name='8080'")
	require.NoError(t, err)

	var got map[string]any
	_, err = toml.Decode(out, &got)
	require.NoError(t, err, out)
	assert.Equal(t, map[string]any{
		"name": "8080",
		"server": map[string]any{
			"host": "localhost",
			"port": int64(9090),
			"tls":  map[string]any{"enabled": true},
		},
	}, got)

	_, err = run(t, "set", "-w", doc, "server.port=1")
	require.NoError(t, err)

	out, err = run(t, "get", doc, "server.port")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "set", doc, "=1")
	require.ErrorContains(t, err, "expected path=value")

	_, err = run(t, "set", doc, "server..port=1")
	require.ErrorIs(t, err, property.ErrIllegalArgument)
}

func TestApplyCommand(t *testing.T) {
	doc := writeFile(t, "config.yaml", "server:\n  host: localhost\n")
	sheet := writeFile(t, "sheet.toml", "[server]\nport = 8080\n\n[server.tls]\nenabled = true\n")

	out, err := run(t, "apply", doc, sheet)
	require.NoError(t, err)
	assert.Equal(t, "server:\n  host: localhost\n  port: 8080\n  tls:\n    enabled: true\n", out)

	_, err = run(t, "apply", doc, filepath.Join(t.TempDir(), "sheet.json"))
	require.Error(t, err)
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		arg   string
		path  string
		value any
	}{
		{"port=8080", "port", 8080},
		{"name=alice", "name", "alice"},
		{"name='8080'", "name", "8080"},
		{"debug=true", "debug", true},
		{"empty=", "empty", nil},
		{"expr=a=b", "expr", "a=b"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			path, value, err := parseAssignment(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.value, value)
		})
	}
}
