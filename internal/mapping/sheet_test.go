package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	data := `
total: "12.50"
customer:
  name: Alice
  address.city: Berlin
  tags: [a, b]
note: ~
labels: {}
`

	sheet, err := ParseYAML([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"total",
		"customer.name",
		"customer.address.city",
		"customer.tags",
		"note",
		"labels",
	}, sheet.Paths())

	values := valuesOf(sheet)
	assert.Equal(t, "12.50", values["total"])
	assert.Equal(t, "Berlin", values["customer.address.city"])
	assert.Equal(t, []any{"a", "b"}, values["customer.tags"])
	assert.Nil(t, values["note"])
	assert.Equal(t, map[string]any{}, values["labels"])
}

func TestParseYAML_Anchors(t *testing.T) {
	data := `
base: &addr
  city: Berlin
shipping: *addr
`

	sheet, err := ParseYAML([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"base.city", "shipping.city"}, sheet.Paths())
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "sequence root", data: "- a\n- b\n", wantErr: "must be a mapping"},
		{name: "bad path", data: "\"a..b\": 1\n", wantErr: "empty segment"},
		{name: "syntax", data: "a: [\n", wantErr: "failed to parse sheet YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	sheet, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, sheet.Assignments)
}

func TestParseTOML(t *testing.T) {
	data := `
total = "12.50"
count = 3

[customer]
name = "Alice"
address.city = "Berlin"

[[items]]
sku = "A-1"
`

	sheet, err := ParseTOML([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"total",
		"count",
		"customer.name",
		"customer.address.city",
		"items",
	}, sheet.Paths())

	values := valuesOf(sheet)
	assert.Equal(t, int64(3), values["count"])
	assert.Equal(t, "Berlin", values["customer.address.city"])
	assert.Equal(t, []map[string]any{{"sku": "A-1"}}, values["items"])
}

func TestParseTOML_Error(t *testing.T) {
	_, err := ParseTOML([]byte("a = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse sheet TOML")
}

func valuesOf(sheet *Sheet) map[string]any {
	res := make(map[string]any, len(sheet.Assignments))
	for _, a := range sheet.Assignments {
		res[a.Path] = a.Value
	}

	return res
}
