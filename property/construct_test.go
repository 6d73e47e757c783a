package property

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenInit struct{}

func (*brokenInit) Init() error { return errors.New("missing defaults") }

func TestDefaultConstructor(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want any
	}{
		{"pointer", reflect.TypeFor[*Customer](), &Customer{}},
		{"struct", reflect.TypeFor[Address](), Address{}},
		{"map", reflect.TypeFor[map[string]int](), map[string]int{}},
		{"empty interface", reflect.TypeFor[any](), map[string]any{}},
		{"initializer", reflect.TypeFor[*Session](), &Session{Token: "fresh"}},
		{"initializer by value", reflect.TypeFor[Session](), Session{Token: "fresh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DefaultConstructor.New(tt.typ)
			require.NoError(t, err)
			assert.True(t, v.Type().AssignableTo(tt.typ))
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}

func TestDefaultConstructor_Failures(t *testing.T) {
	for _, typ := range []reflect.Type{
		nil,
		reflect.TypeFor[int](),
		reflect.TypeFor[[]string](),
		reflect.TypeFor[error](),
	} {
		_, err := DefaultConstructor.New(typ)
		require.ErrorIs(t, err, ErrInstantiationFailed, "%v", typ)
	}

	_, err := DefaultConstructor.New(reflect.TypeFor[*brokenInit]())
	require.ErrorIs(t, err, ErrInstantiationFailed)
	assert.ErrorContains(t, err, "missing defaults")
}
