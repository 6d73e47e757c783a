package introspect

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNilOwner       = errors.New("owner is nil")
	ErrNotAddressable = errors.New("owner is not addressable, pass a pointer")
	ErrNotAssignable  = errors.New("value is not assignable")
	ErrNoReader       = errors.New("property has no reader")
	ErrNoWriter       = errors.New("property has no writer")
	ErrPanicked       = errors.New("accessor panicked")
)

// Source tells where a capability of a property comes from.
type Source int

const (
	SourceNone Source = iota
	SourceField
	SourceMethod
	SourceMapKey
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceField:
		return "field"
	case SourceMethod:
		return "method"
	case SourceMapKey:
		return "key"
	default:
		return "none"
	}
}

// Descriptor describes one named property of an owner type. It is immutable
// once built.
type Descriptor struct {
	// Owner is the struct or map type the property belongs to (never a pointer).
	Owner reflect.Type
	// Name is the property name as it was requested.
	Name string
	// ValueType is the declared type of the property value.
	ValueType reflect.Type

	field  []int
	getter *method
	setter *method
	mapKey bool
}

type method struct {
	name    string
	ptrRecv bool
	withErr bool
}

// HasReader reports whether the property can be read.
func (d *Descriptor) HasReader() bool {
	return d.getter != nil || d.field != nil || d.mapKey
}

// HasWriter reports whether the property can be written.
func (d *Descriptor) HasWriter() bool {
	return d.setter != nil || d.field != nil || d.mapKey
}

// ReadSource reports where reads are served from.
func (d *Descriptor) ReadSource() Source {
	switch {
	case d.mapKey:
		return SourceMapKey
	case d.getter != nil:
		return SourceMethod
	case d.field != nil:
		return SourceField
	default:
		return SourceNone
	}
}

// WriteSource reports where writes are sent to.
func (d *Descriptor) WriteSource() Source {
	switch {
	case d.mapKey:
		return SourceMapKey
	case d.setter != nil:
		return SourceMethod
	case d.field != nil:
		return SourceField
	default:
		return SourceNone
	}
}

// String returns a short description, e.g. "Order.customer *Customer (rw)".
func (d *Descriptor) String() string {
	mode := ""
	if d.HasReader() {
		mode += "r"
	}

	if d.HasWriter() {
		mode += "w"
	}

	return fmt.Sprintf("%s.%s %s (%s)", d.Owner.Name(), d.Name, d.ValueType, mode)
}

// Indirect dereferences pointers and interfaces. It reports false when a nil
// is met on the way.
func Indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v, false
		}

		v = v.Elem()
	}

	return v, v.IsValid()
}

// IndirectType strips every pointer level from t.
func IndirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// Read returns the property value of owner. Owner may be a value or a pointer
// of the owner type. An absent map key reads as an invalid reflect.Value.
func (d *Descriptor) Read(owner reflect.Value) (reflect.Value, error) {
	v, ok := Indirect(owner)
	if !ok {
		return reflect.Value{}, ErrNilOwner
	}

	switch {
	case d.mapKey:
		if v.IsNil() {
			return reflect.Value{}, nil
		}

		return v.MapIndex(reflect.ValueOf(d.Name).Convert(d.Owner.Key())), nil

	case d.getter != nil:
		out, err := d.getter.call(v, nil)
		if err != nil {
			return reflect.Value{}, err
		}

		return out, nil

	case d.field != nil:
		return fieldForRead(v, d.field), nil

	default:
		return reflect.Value{}, ErrNoReader
	}
}

// Write stores value into the property of owner. Owner must be a pointer (or
// otherwise addressable) unless the property is a map key. An invalid value
// stores the zero value.
func (d *Descriptor) Write(owner reflect.Value, value reflect.Value) error {
	v, ok := Indirect(owner)
	if !ok {
		return ErrNilOwner
	}

	if !value.IsValid() {
		value = reflect.Zero(d.ValueType)
	}

	if !value.Type().AssignableTo(d.ValueType) {
		return fmt.Errorf("%w: %s to %s", ErrNotAssignable, value.Type(), d.ValueType)
	}

	switch {
	case d.mapKey:
		if v.IsNil() {
			if !v.CanSet() {
				return fmt.Errorf("%w: nil map", ErrNotAddressable)
			}

			v.Set(reflect.MakeMap(d.Owner))
		}

		v.SetMapIndex(reflect.ValueOf(d.Name).Convert(d.Owner.Key()), value)

		return nil

	case d.setter != nil:
		if d.setter.ptrRecv && !v.CanAddr() {
			return ErrNotAddressable
		}

		_, err := d.setter.call(v, []reflect.Value{value})

		return err

	case d.field != nil:
		if !v.CanAddr() {
			return ErrNotAddressable
		}

		fv, err := fieldForWrite(v, d.field)
		if err != nil {
			return err
		}

		fv.Set(value)

		return nil

	default:
		return ErrNoWriter
	}
}

// fieldForRead walks index. A nil embedded pointer on the way reads as an
// invalid reflect.Value.
func fieldForRead(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v
}

// fieldForWrite walks index, allocating nil embedded pointers on the way.
func fieldForWrite(v reflect.Value, index []int) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("%w: nil embedded %s", ErrNotAddressable, v.Type())
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	if !v.CanSet() {
		return reflect.Value{}, ErrNotAddressable
	}

	return v, nil
}

func (m *method) call(v reflect.Value, args []reflect.Value) (out reflect.Value, err error) {
	recv := v
	if m.ptrRecv {
		if v.CanAddr() {
			recv = v.Addr()
		} else {
			// read through a copy; writes were rejected before reaching here
			recv = reflect.New(v.Type())
			recv.Elem().Set(v)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrPanicked, m.name, r)
		}
	}()

	res := recv.MethodByName(m.name).Call(args)

	if m.withErr {
		if errV := res[len(res)-1]; !errV.IsNil() {
			return reflect.Value{}, errV.Interface().(error)
		}
	}

	if len(args) > 0 || len(res) == 0 {
		return reflect.Value{}, nil
	}

	return res[0], nil
}
