package property

import (
	"reflect"

	"property-graph/internal/diagnostic"
	"property-graph/internal/introspect"
	"property-graph/internal/match"
)

// Accessor reads one property, possibly at the end of a dotted path.
type Accessor interface {
	// Name returns the property name or dotted path.
	Name() string
	// ValueType returns the declared type of the property, or nil when it is
	// only known per instance.
	ValueType() reflect.Type
	// Read returns the property value of instance. Missing values read as nil.
	Read(instance any) (any, error)
}

// valueReader is the reflect-level side of an accessor, used by graphs.
// The descriptor is nil when the property was not found.
type valueReader interface {
	readValue(v reflect.Value) (reflect.Value, *introspect.Descriptor, error)
}

type typedAccessor struct {
	owner  reflect.Type
	name   string
	strict bool
	desc   *introspect.Descriptor
}

func (f *Factory) newTypedAccessor(owner reflect.Type, name string, strict bool) (*typedAccessor, error) {
	owner = introspect.IndirectType(owner)

	d, err := f.cache.Resolve(owner, name)
	if err != nil {
		return nil, err
	}

	if d == nil || !d.HasReader() {
		if strict {
			return nil, notFound(owner, name, d)
		}

		d = nil
	}

	return &typedAccessor{owner: owner, name: name, strict: strict, desc: d}, nil
}

func (a *typedAccessor) Name() string { return a.name }

func (a *typedAccessor) ValueType() reflect.Type {
	if a.desc == nil {
		return nil
	}

	return a.desc.ValueType
}

func (a *typedAccessor) Read(instance any) (any, error) {
	return valueOut(a.readValue(reflect.ValueOf(instance)))
}

func (a *typedAccessor) readValue(v reflect.Value) (reflect.Value, *introspect.Descriptor, error) {
	v = unwrap(v)

	if isNil(v) {
		if a.strict {
			return reflect.Value{}, nil, diagnostic.New(diagnostic.KindAccessFailed, a.owner, a.name, "instance is nil")
		}

		return reflect.Value{}, nil, nil
	}

	if t := introspect.IndirectType(v.Type()); t != a.owner {
		return reflect.Value{}, nil, diagnostic.New(diagnostic.KindAccessFailed, a.owner, a.name,
			"instance is a %s", v.Type())
	}

	if a.desc == nil {
		return reflect.Value{}, nil, nil
	}

	return read(a.desc, v)
}

type untypedAccessor struct {
	cache  *introspect.Cache
	name   string
	strict bool
}

func (f *Factory) newUntypedAccessor(name string, strict bool) *untypedAccessor {
	return &untypedAccessor{cache: f.cache, name: name, strict: strict}
}

func (a *untypedAccessor) Name() string { return a.name }

func (a *untypedAccessor) ValueType() reflect.Type { return nil }

func (a *untypedAccessor) Read(instance any) (any, error) {
	return valueOut(a.readValue(reflect.ValueOf(instance)))
}

func (a *untypedAccessor) readValue(v reflect.Value) (reflect.Value, *introspect.Descriptor, error) {
	v = unwrap(v)

	if isNil(v) {
		if a.strict {
			return reflect.Value{}, nil, diagnostic.New(diagnostic.KindAccessFailed, nil, a.name, "instance is nil")
		}

		return reflect.Value{}, nil, nil
	}

	d, err := a.cache.Resolve(v.Type(), a.name)
	if err != nil {
		if a.strict {
			return reflect.Value{}, nil, err
		}

		return reflect.Value{}, nil, nil
	}

	if d == nil || !d.HasReader() {
		if a.strict {
			return reflect.Value{}, nil, notFound(introspect.IndirectType(v.Type()), a.name, d)
		}

		return reflect.Value{}, nil, nil
	}

	return read(d, v)
}

func read(d *introspect.Descriptor, v reflect.Value) (reflect.Value, *introspect.Descriptor, error) {
	out, err := d.Read(v)
	if err != nil {
		return reflect.Value{}, d, diagnostic.Wrap(diagnostic.KindAccessFailed, d.Owner, d.Name, err, "")
	}

	if out.IsValid() && !out.CanInterface() {
		return reflect.Value{}, d, diagnostic.New(diagnostic.KindAccessFailed, d.Owner, d.Name,
			"value is not exported")
	}

	return out, d, nil
}

func valueOut(v reflect.Value, _ *introspect.Descriptor, err error) (any, error) {
	if err != nil || !v.IsValid() {
		return nil, err
	}

	return v.Interface(), nil
}

// notFound reports a missing property of owner with spelling suggestions.
// A descriptor that exists but lacks the needed capability is reported as well.
func notFound(owner reflect.Type, name string, d *introspect.Descriptor) *diagnostic.Error {
	if d != nil {
		return diagnostic.New(diagnostic.KindPropertyNotFound, owner, name, "property is not readable")
	}

	return diagnostic.New(diagnostic.KindPropertyNotFound, owner, name, "").
		WithSuggestions(match.Suggest(name, introspect.Properties(owner), 3))
}

// unwrap strips non-nil interface layers, e.g. values read from map[string]any.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}
