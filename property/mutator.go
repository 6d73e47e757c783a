package property

import (
	"reflect"

	"property-graph/internal/coerce"
	"property-graph/internal/diagnostic"
	"property-graph/internal/introspect"
)

// Mutator writes one property, possibly at the end of a dotted path.
type Mutator interface {
	// Name returns the property name or dotted path.
	Name() string
	// ValueType returns the declared type of the property, or nil when it is
	// only known per instance.
	ValueType() reflect.Type
	// Write stores value into the property of instance. Struct instances must
	// be passed by pointer. A nil value stores the zero value.
	Write(instance any, value any) error
}

// valueWriter is the reflect-level side of a mutator, used by graphs. It
// reports whether the value was stored or the write was skipped.
type valueWriter interface {
	writeValue(v reflect.Value, value reflect.Value) (bool, error)
}

type typedMutator struct {
	owner       reflect.Type
	name        string
	required    bool
	autoConvert bool
	converter   Converter
	desc        *introspect.Descriptor
}

func (f *Factory) newTypedMutator(owner reflect.Type, name string, required, autoConvert bool) (*typedMutator, error) {
	owner = introspect.IndirectType(owner)

	d, err := f.cache.Resolve(owner, name)
	if err != nil {
		return nil, err
	}

	if d == nil || !d.HasWriter() {
		if required {
			return nil, notWritable(diagnostic.KindConfiguration, owner, name, d)
		}

		d = nil
	}

	return &typedMutator{
		owner:       owner,
		name:        name,
		required:    required,
		autoConvert: autoConvert,
		converter:   f.converter,
		desc:        d,
	}, nil
}

func (m *typedMutator) Name() string { return m.name }

func (m *typedMutator) ValueType() reflect.Type {
	if m.desc == nil {
		return nil
	}

	return m.desc.ValueType
}

func (m *typedMutator) Write(instance any, value any) error {
	_, err := m.writeValue(reflect.ValueOf(instance), reflect.ValueOf(value))

	return err
}

func (m *typedMutator) writeValue(v reflect.Value, value reflect.Value) (bool, error) {
	v = unwrap(v)

	if isNil(v) {
		if m.required {
			return false, diagnostic.New(diagnostic.KindIllegalArgument, m.owner, m.name, "instance is nil")
		}

		return false, nil
	}

	if t := introspect.IndirectType(v.Type()); t != m.owner {
		return false, diagnostic.New(diagnostic.KindMutationFailed, m.owner, m.name,
			"instance is a %s", v.Type())
	}

	if m.desc == nil {
		return false, nil
	}

	return true, write(m.desc, v, value, m.autoConvert, m.converter)
}

type untypedMutator struct {
	name        string
	required    bool
	autoConvert bool
	cache       *introspect.Cache
	converter   Converter
}

func (f *Factory) newUntypedMutator(name string, required, autoConvert bool) *untypedMutator {
	return &untypedMutator{
		name:        name,
		required:    required,
		autoConvert: autoConvert,
		cache:       f.cache,
		converter:   f.converter,
	}
}

func (m *untypedMutator) Name() string { return m.name }

func (m *untypedMutator) ValueType() reflect.Type { return nil }

func (m *untypedMutator) Write(instance any, value any) error {
	_, err := m.writeValue(reflect.ValueOf(instance), reflect.ValueOf(value))

	return err
}

func (m *untypedMutator) writeValue(v reflect.Value, value reflect.Value) (bool, error) {
	v = unwrap(v)

	if isNil(v) {
		if m.required {
			return false, diagnostic.New(diagnostic.KindMutationFailed, nil, m.name, "instance is nil")
		}

		return false, nil
	}

	owner := introspect.IndirectType(v.Type())

	d, err := m.cache.Resolve(owner, m.name)
	if err != nil {
		if m.required {
			return false, diagnostic.Wrap(diagnostic.KindMutationFailed, owner, m.name, err, "")
		}

		return false, nil
	}

	if d == nil || !d.HasWriter() {
		if m.required {
			return false, notWritable(diagnostic.KindMutationFailed, owner, m.name, d)
		}

		return false, nil
	}

	return true, write(d, v, value, m.autoConvert, m.converter)
}

// write stores value through d, converting it first when allowed.
func write(d *introspect.Descriptor, owner, value reflect.Value, autoConvert bool, converter Converter) error {
	value = unwrap(value)

	if value.IsValid() && !value.Type().AssignableTo(d.ValueType) {
		if !autoConvert {
			return diagnostic.New(diagnostic.KindMutationFailed, d.Owner, d.Name,
				"%s is not assignable to %s", value.Type(), d.ValueType)
		}

		if err := checkCompatible(converter, value.Type(), d.ValueType); err != nil {
			return diagnostic.Wrap(diagnostic.KindConfiguration, d.Owner, d.Name, err, "cannot adapt value")
		}

		converted, err := converter.Convert(value.Interface(), d.ValueType)
		if err != nil {
			return diagnostic.Wrap(diagnostic.KindConfiguration, d.Owner, d.Name, err, "cannot adapt value")
		}

		value = reflect.ValueOf(converted)
	}

	if err := d.Write(owner, value); err != nil {
		return diagnostic.Wrap(diagnostic.KindMutationFailed, d.Owner, d.Name, err, "")
	}

	return nil
}

// compatibilityScorer is implemented by converters that can tell up front
// whether a pair of types has any conversion path, such as coerce.Service.
type compatibilityScorer interface {
	Compatibility(source, target reflect.Type) coerce.Compatibility
}

// checkCompatible rejects pairs the converter scores as incompatible without
// attempting a conversion.
func checkCompatible(converter Converter, source, target reflect.Type) error {
	scorer, ok := converter.(compatibilityScorer)
	if !ok {
		return nil
	}

	if c := scorer.Compatibility(source, target); c == coerce.Incompatible {
		return diagnostic.New(diagnostic.KindConversionFailed, nil, "", "%s to %s is %s", source, target, c)
	}

	return nil
}

// notWritable reports a missing property or writer as a failure of kind.
func notWritable(kind diagnostic.Kind, owner reflect.Type, name string, d *introspect.Descriptor) *diagnostic.Error {
	if d != nil {
		return diagnostic.Wrap(kind, owner, name, introspect.ErrNoWriter, "property is read-only")
	}

	return diagnostic.Wrap(kind, owner, name, notFound(owner, name, nil), "")
}
