package property

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-graph/internal/introspect"
)

func TestMutator_RoundTrip(t *testing.T) {
	tests := []struct {
		property string
		value    any
	}{
		{"total", 19.99},
		{"quantity", 3},
		{"email", "alice@example.com"},
		{"customer", &Customer{Name: "Alice"}},
		{"billing", Address{City: "Berlin"}},
		{"extra", map[string]any{"gift": true}},
		{"meta", []string{"a", "b"}},
		{"ID", uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			owner := reflect.TypeFor[Order]()
			if tt.property == "email" {
				owner = reflect.TypeFor[Customer]()
			}

			instance := reflect.New(owner).Interface()

			m, err := NewMutator(owner, tt.property, true, false)
			require.NoError(t, err)

			a, err := NewAccessor(owner, tt.property, true)
			require.NoError(t, err)

			require.NoError(t, m.Write(instance, tt.value))

			got, err := a.Read(instance)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestTypedMutator_Construction(t *testing.T) {
	_, err := MutatorOf[Order]("status", true, false)
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorIs(t, err, introspect.ErrNoWriter)

	_, err = MutatorOf[Order]("totl", true, false)
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Equal(t, KindConfiguration, KindOf(err))

	for _, name := range []string{"status", "totl"} {
		m, err := MutatorOf[Order](name, false, false)
		require.NoError(t, err, name)
		assert.Nil(t, m.ValueType())

		order := &Order{status: "open"}
		require.NoError(t, m.Write(order, "x"), name)
		assert.Equal(t, "open", order.Status())
	}

	m, err := MutatorOf[Order]("quantity", true, false)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[int](), m.ValueType())
}

func TestTypedMutator_NilInstance(t *testing.T) {
	required, err := MutatorOf[Order]("total", true, false)
	require.NoError(t, err)

	optional, err := MutatorOf[Order]("total", false, false)
	require.NoError(t, err)

	for _, instance := range []any{nil, (*Order)(nil)} {
		require.ErrorIs(t, required.Write(instance, 1.0), ErrIllegalArgument)
		require.NoError(t, optional.Write(instance, 1.0))
	}
}

func TestTypedMutator_Failures(t *testing.T) {
	m, err := MutatorOf[Order]("total", true, false)
	require.NoError(t, err)

	err = m.Write(&Customer{}, 1.0)
	require.ErrorIs(t, err, ErrMutationFailed, "instance of another type")

	err = m.Write(Order{}, 1.0)
	require.ErrorIs(t, err, ErrMutationFailed)
	require.ErrorIs(t, err, introspect.ErrNotAddressable)

	email, err := MutatorOf[Customer]("email", true, false)
	require.NoError(t, err)

	c := &Customer{}
	err = email.Write(c, "not-an-email")
	require.ErrorIs(t, err, ErrMutationFailed)
	assert.ErrorContains(t, err, "invalid email")
	assert.Empty(t, c.Email())
}

func TestMutator_Coercion(t *testing.T) {
	converting, err := MutatorOf[Order]("quantity", true, true)
	require.NoError(t, err)

	strict, err := MutatorOf[Order]("quantity", true, false)
	require.NoError(t, err)

	order := &Order{}

	require.NoError(t, converting.Write(order, "42"))
	assert.Equal(t, 42, order.Quantity)

	require.NoError(t, converting.Write(order, int8(7)))
	assert.Equal(t, 7, order.Quantity)

	for _, v := range []any{"43", int64(8), 9.0} {
		err = strict.Write(order, v)
		require.ErrorIs(t, err, ErrMutationFailed, "%T", v)
		assert.Equal(t, 7, order.Quantity, "no silent conversion of %T", v)
	}

	for _, v := range []any{"abc", 1e20, []int{1}} {
		err = converting.Write(order, v)
		require.ErrorIs(t, err, ErrConfiguration, "%T", v)
		require.ErrorIs(t, err, ErrConversionFailed, "%T", v)
		assert.Equal(t, 7, order.Quantity)
	}

	err = converting.Write(order, Address{City: "Berlin"})
	require.ErrorIs(t, err, ErrConversionFailed)
	assert.Contains(t, err.Error(), "property.Address to int is incompatible")

	billing, err := MutatorOf[Order]("billing", true, true)
	require.NoError(t, err)
	require.NoError(t, billing.Write(order, &Address{City: "Berlin"}), "pointers to the declared type are dereferenced")
	assert.Equal(t, "Berlin", order.Billing.City)

	id, err := MutatorOf[Order]("ID", true, true)
	require.NoError(t, err)
	require.NoError(t, id.Write(order, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.Equal(t, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), order.ID)

	require.NoError(t, converting.Write(order, nil))
	assert.Zero(t, order.Quantity, "nil stores the zero value")
}

func TestMutator_Map(t *testing.T) {
	m, err := MutatorOf[map[string]int]("apples", true, true)
	require.NoError(t, err)

	basket := map[string]int{}
	require.NoError(t, m.Write(basket, "5"))
	assert.Equal(t, map[string]int{"apples": 5}, basket)

	var empty map[string]int
	require.NoError(t, m.Write(&empty, 1))
	assert.Equal(t, map[string]int{"apples": 1}, empty)
}

func TestUntypedMutator(t *testing.T) {
	required, err := NewMutator(nil, "name", true, true)
	require.NoError(t, err)

	optional, err := NewMutator(nil, "name", false, false)
	require.NoError(t, err)
	assert.Nil(t, optional.ValueType())

	c := &Customer{}
	require.NoError(t, required.Write(c, "Alice"))
	assert.Equal(t, "Alice", c.Name)

	doc := map[string]any{}
	require.NoError(t, required.Write(doc, "Bob"))
	assert.Equal(t, "Bob", doc["name"])

	require.ErrorIs(t, required.Write(nil, "x"), ErrMutationFailed)
	require.NoError(t, optional.Write(nil, "x"))

	require.ErrorIs(t, required.Write(&Order{}, "x"), ErrMutationFailed, "missing property")
	require.ErrorIs(t, required.Write(&Order{}, "x"), ErrPropertyNotFound)
	require.NoError(t, optional.Write(&Order{}, "x"))

	require.ErrorIs(t, required.Write(42, "x"), ErrMutationFailed)
	require.NoError(t, optional.Write(42, "x"))

	status, err := NewMutator(nil, "status", true, false)
	require.NoError(t, err)
	require.ErrorIs(t, status.Write(&Order{}, "x"), ErrMutationFailed, "missing writer")
	require.ErrorIs(t, status.Write(&Order{}, "x"), introspect.ErrNoWriter)

	quantity, err := NewMutator(nil, "quantity", true, true)
	require.NoError(t, err)

	order := &Order{}
	require.NoError(t, quantity.Write(order, "12"))
	assert.Equal(t, 12, order.Quantity)
	require.ErrorIs(t, quantity.Write(order, "twelve"), ErrConfiguration)
}
