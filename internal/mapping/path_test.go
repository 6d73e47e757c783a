package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Path
		wantErr string
	}{
		{name: "simple", path: "name", want: Path{"name"}},
		{name: "nested", path: "customer.name", want: Path{"customer", "name"}},
		{name: "deep", path: "order.customer.address.city", want: Path{"order", "customer", "address", "city"}},
		{name: "map keys", path: "labels.team-a", want: Path{"labels", "team-a"}},
		{name: "empty", path: "", wantErr: "empty path"},
		{name: "leading dot", path: ".name", wantErr: "empty segment"},
		{name: "trailing dot", path: "customer.", wantErr: "empty segment"},
		{name: "double dot", path: "customer..name", wantErr: "empty segment"},
		{name: "white space", path: "customer. name", wantErr: "white space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.path, got.String())
		})
	}
}

func TestPath_ParentLeaf(t *testing.T) {
	p := Path{"order", "customer", "name"}

	assert.Equal(t, Path{"order", "customer"}, p.Parent())
	assert.Equal(t, "name", p.Leaf())

	assert.Nil(t, Path(nil).Parent())
	assert.Empty(t, Path(nil).Leaf())
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "name", Join("", "name"))
	assert.Equal(t, "customer.name", Join("customer", "name"))
	assert.True(t, Path{"customer", "name"}.IsNested())
	assert.False(t, Path{"name"}.IsNested())
}
