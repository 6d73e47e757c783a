package diagnostic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type order struct{}

func TestError_Format(t *testing.T) {
	owner := reflect.TypeFor[order]()

	err := New(KindPropertyNotFound, owner, "custmer", "no field or accessor").
		WithSuggestions([]string{"customer"})

	assert.Equal(t,
		`property not found "custmer" on diagnostic.order: no field or accessor (did you mean customer?)`,
		err.Error())

	cause := errors.New("boom")
	wrapped := Wrap(KindAccessFailed, nil, "name", cause, "")
	assert.Equal(t, `property access failed "name": boom`, wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("setter refused value")
	err := Wrap(KindMutationFailed, nil, "name", cause, "")

	require.ErrorIs(t, err, ErrMutationFailed)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrAccessFailed)

	nested := Wrap(KindConfiguration, nil, "age", New(KindConversionFailed, nil, "", "bad"), "")
	assert.ErrorIs(t, nested, ErrConfiguration)
	assert.ErrorIs(t, nested, ErrConversionFailed)
	assert.Equal(t, KindConfiguration, KindOf(nested))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "PropertyNotFound", KindPropertyNotFound.String())
	assert.Equal(t, "InstantiationFailed", KindInstantiationFailed.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Nil(t, Kind(0).Sentinel())
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Err())

	d.Add("a.b", nil)
	assert.True(t, d.IsValid())

	d.Add("a.b", New(KindPropertyNotFound, nil, "b", ""))
	d.Add("c", errors.New("plain"))
	d.Add("d", New(KindMutationFailed, nil, "d", ""))

	require.Len(t, d.Errors, 3)
	assert.Equal(t, "PropertyNotFound", d.Errors[0].Code)
	assert.Equal(t, "Unknown", d.Errors[1].Code)
	assert.Equal(t, "MutationFailed", d.Errors[2].Code)

	err := d.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Contains(t, err.Error(), "[PropertyNotFound] a.b")
}
