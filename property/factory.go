package property

import (
	"reflect"

	"property-graph/internal/coerce"
	"property-graph/internal/diagnostic"
	"property-graph/internal/introspect"
	"property-graph/internal/mapping"
)

// Converter adapts a value to the declared type of a property.
type Converter = coerce.Converter

// Factory builds accessors and mutators. The zero value is not usable, use
// NewFactory.
type Factory struct {
	cache       *introspect.Cache
	converter   Converter
	constructor Constructor
}

// Option configures a Factory.
type Option func(*Factory)

// WithCache makes the factory resolve descriptors through cache instead of
// the process-wide one.
func WithCache(cache *introspect.Cache) Option {
	return func(f *Factory) {
		f.cache = cache
	}
}

// WithConverter sets the converter used by auto-converting mutators.
func WithConverter(converter Converter) Option {
	return func(f *Factory) {
		f.converter = converter
	}
}

// WithConstructor sets how graph mutators allocate missing intermediate objects.
func WithConstructor(constructor Constructor) Option {
	return func(f *Factory) {
		f.constructor = constructor
	}
}

// NewFactory creates a Factory backed by the process-wide descriptor cache,
// the default converter and DefaultConstructor unless configured otherwise.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		cache:       introspect.Default,
		converter:   coerce.Default,
		constructor: DefaultConstructor,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// DefaultFactory serves the package-level functions.
var DefaultFactory = NewFactory()

// NewAccessor returns an accessor for name. A dotted name gives a graph
// accessor. Otherwise the accessor is bound to owner, or resolves the owner
// from every instance when owner is nil.
//
// A strict accessor fails on nil instances and missing properties; a typed
// strict accessor reports a missing property right here.
func (f *Factory) NewAccessor(owner reflect.Type, name string, strict bool) (Accessor, error) {
	segments, err := mapping.ParsePath(name)
	if err != nil {
		return nil, diagnostic.Wrap(diagnostic.KindIllegalArgument, owner, name, err, "")
	}

	if segments.IsNested() {
		g, err := f.newGraphAccessor(owner, name, segments, strict)
		if err != nil {
			return nil, err
		}

		return g, nil
	}

	if owner == nil {
		return f.newUntypedAccessor(name, strict), nil
	}

	a, err := f.newTypedAccessor(owner, name, strict)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// NewMutator returns a mutator for name, dispatched like NewAccessor.
//
// A required mutator fails on nil instances, missing properties and
// properties without a writer; a typed required mutator reports a missing
// writer right here. With autoConvert, values that are not assignable to the
// declared property type go through the converter first.
func (f *Factory) NewMutator(owner reflect.Type, name string, required, autoConvert bool) (Mutator, error) {
	segments, err := mapping.ParsePath(name)
	if err != nil {
		return nil, diagnostic.Wrap(diagnostic.KindIllegalArgument, owner, name, err, "")
	}

	if segments.IsNested() {
		g, err := f.newGraphMutator(owner, name, segments, required, autoConvert)
		if err != nil {
			return nil, err
		}

		return g, nil
	}

	if owner == nil {
		return f.newUntypedMutator(name, required, autoConvert), nil
	}

	m, err := f.newTypedMutator(owner, name, required, autoConvert)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// NewAccessor builds an accessor with DefaultFactory.
func NewAccessor(owner reflect.Type, name string, strict bool) (Accessor, error) {
	return DefaultFactory.NewAccessor(owner, name, strict)
}

// NewMutator builds a mutator with DefaultFactory.
func NewMutator(owner reflect.Type, name string, required, autoConvert bool) (Mutator, error) {
	return DefaultFactory.NewMutator(owner, name, required, autoConvert)
}

// AccessorOf builds an accessor bound to T with DefaultFactory.
func AccessorOf[T any](name string, strict bool) (Accessor, error) {
	return DefaultFactory.NewAccessor(reflect.TypeFor[T](), name, strict)
}

// MutatorOf builds a mutator bound to T with DefaultFactory.
func MutatorOf[T any](name string, required, autoConvert bool) (Mutator, error) {
	return DefaultFactory.NewMutator(reflect.TypeFor[T](), name, required, autoConvert)
}
