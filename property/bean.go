package property

import (
	"maps"
	"reflect"
	"slices"

	"property-graph/internal/diagnostic"
	"property-graph/internal/introspect"
	"property-graph/internal/mapping"
)

// Descriptor describes one property of a type.
type Descriptor = introspect.Descriptor

// Sheet is an ordered list of path/value assignments, see LoadSheet.
type Sheet = mapping.Sheet

// Assignment sets one property path to a value.
type Assignment = mapping.Assignment

// LoadSheet reads a YAML or TOML property sheet.
func LoadSheet(path string) (*Sheet, error) {
	return mapping.LoadFile(path)
}

// Get reads the property at path from instance. Missing properties and nil
// nodes on the way are errors.
func (f *Factory) Get(instance any, path string) (any, error) {
	a, err := f.NewAccessor(reflect.TypeOf(instance), path, true)
	if err != nil {
		return nil, err
	}

	return a.Read(instance)
}

// GetOr reads the property at path from instance, returning fallback when
// the property or a node on the way is missing.
func (f *Factory) GetOr(instance any, path string, fallback any) (any, error) {
	a, err := f.NewAccessor(reflect.TypeOf(instance), path, false)
	if err != nil {
		return nil, err
	}

	v, err := a.Read(instance)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return fallback, nil
	}

	return v, nil
}

// Set writes value to the property at path of instance, converting it to
// the declared type and allocating missing nodes on the way.
func (f *Factory) Set(instance any, path string, value any) error {
	m, err := f.NewMutator(reflect.TypeOf(instance), path, true, true)
	if err != nil {
		return err
	}

	return m.Write(instance, value)
}

// Populate sets every path of values, in sorted path order. Failing paths do
// not stop the others; all failures are returned joined.
func (f *Factory) Populate(instance any, values map[string]any) error {
	var diags diagnostic.Diagnostics

	for _, path := range slices.Sorted(maps.Keys(values)) {
		diags.Add(path, f.Set(instance, path, values[path]))
	}

	return diags.Err()
}

// Apply sets every assignment of sheet in order. Failing assignments do not
// stop the others; all failures are returned joined.
func (f *Factory) Apply(instance any, sheet *Sheet) error {
	var diags diagnostic.Diagnostics

	for _, a := range sheet.Assignments {
		diags.Add(a.Path, f.Set(instance, a.Path, a.Value))
	}

	return diags.Err()
}

// Describe lists the descriptors of every property of t in name order.
func (f *Factory) Describe(t reflect.Type) ([]*Descriptor, error) {
	if !introspect.Introspectable(t) {
		return nil, diagnostic.New(diagnostic.KindIntrospectionFailed, t, "",
			"type has no fields, string map keys or methods")
	}

	names := introspect.Properties(t)
	res := make([]*Descriptor, 0, len(names))

	for _, name := range names {
		d, err := f.cache.Resolve(t, name)
		if err != nil {
			return nil, err
		}

		if d != nil {
			res = append(res, d)
		}
	}

	return res, nil
}

// Get reads a property with DefaultFactory.
func Get(instance any, path string) (any, error) {
	return DefaultFactory.Get(instance, path)
}

// GetOr reads a property with DefaultFactory, see Factory.GetOr.
func GetOr(instance any, path string, fallback any) (any, error) {
	return DefaultFactory.GetOr(instance, path, fallback)
}

// Set writes a property with DefaultFactory.
func Set(instance any, path string, value any) error {
	return DefaultFactory.Set(instance, path, value)
}

// Populate writes many properties with DefaultFactory.
func Populate(instance any, values map[string]any) error {
	return DefaultFactory.Populate(instance, values)
}

// Apply writes a sheet with DefaultFactory.
func Apply(instance any, sheet *Sheet) error {
	return DefaultFactory.Apply(instance, sheet)
}

// Describe lists the properties of t with DefaultFactory.
func Describe(t reflect.Type) ([]*Descriptor, error) {
	return DefaultFactory.Describe(t)
}
