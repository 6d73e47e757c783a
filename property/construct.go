package property

import (
	"reflect"

	"property-graph/internal/diagnostic"
)

// Constructor allocates default instances of intermediate graph nodes.
type Constructor interface {
	// New returns a fresh value assignable to t.
	New(t reflect.Type) (reflect.Value, error)
}

// ConstructorFunc adapts a function to Constructor.
type ConstructorFunc func(t reflect.Type) (reflect.Value, error)

func (fn ConstructorFunc) New(t reflect.Type) (reflect.Value, error) {
	return fn(t)
}

// Initializer is implemented by types that fill in their own defaults. Init
// is called on every instance DefaultConstructor allocates.
type Initializer interface {
	Init() error
}

var initializerType = reflect.TypeFor[Initializer]()

// DefaultConstructor allocates pointers to zero values, empty maps, and
// map[string]any for empty interfaces.
var DefaultConstructor Constructor = ConstructorFunc(construct)

func construct(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, diagnostic.New(diagnostic.KindInstantiationFailed, nil, "", "type is nil")
	}

	var v reflect.Value

	switch t.Kind() {
	case reflect.Pointer:
		v = reflect.New(t.Elem())
	case reflect.Struct:
		v = reflect.New(t).Elem()
	case reflect.Map:
		v = reflect.MakeMap(t)
	case reflect.Interface:
		if t.NumMethod() > 0 {
			return reflect.Value{}, diagnostic.New(diagnostic.KindInstantiationFailed, t, "",
				"interface has methods, no default implementation")
		}

		v = reflect.ValueOf(map[string]any{})
	default:
		return reflect.Value{}, diagnostic.New(diagnostic.KindInstantiationFailed, t, "",
			"%s values cannot be navigated", t.Kind())
	}

	if err := initialize(v); err != nil {
		return reflect.Value{}, diagnostic.Wrap(diagnostic.KindInstantiationFailed, t, "", err, "Init failed")
	}

	return v, nil
}

func initialize(v reflect.Value) error {
	switch {
	case v.Type().Implements(initializerType):
		return v.Interface().(Initializer).Init()
	case v.CanAddr() && v.Addr().Type().Implements(initializerType):
		return v.Addr().Interface().(Initializer).Init()
	default:
		return nil
	}
}
