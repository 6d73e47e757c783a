package coerce

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"

	"property-graph/internal/diagnostic"
	"property-graph/primitive"
)

// Converter adapts a value to a target type.
type Converter interface {
	Convert(value any, target reflect.Type) (any, error)
}

// Service is the default Converter.
type Service struct {
	categories primitive.CategoryEnum
}

// Option configures a Service.
type Option func(*Service)

// WithCategories restricts scalar conversions to the given categories.
func WithCategories(categories primitive.CategoryEnum) Option {
	return func(s *Service) {
		s.categories = categories
	}
}

// New creates a Service allowing every scalar category unless configured otherwise.
func New(opts ...Option) *Service {
	s := &Service{categories: primitive.CategoryAll}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Default is the converter used when none is configured.
var Default = New()

var valueFormatter = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var errNoPath = errors.New("no conversion path")

// Convert returns value converted to target. Failures are ConversionFailed
// diagnostics wrapping the reason.
func (s *Service) Convert(value any, target reflect.Type) (any, error) {
	out, err := s.ConvertValue(reflect.ValueOf(value), target)
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

// Compatibility scores source against target with this service's categories.
func (s *Service) Compatibility(source, target reflect.Type) Compatibility {
	return Score(source, target, s.categories)
}

// ConvertValue is Convert for reflect values. An invalid v yields the zero
// value of target.
func (s *Service) ConvertValue(v reflect.Value, target reflect.Type) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, diagnostic.New(diagnostic.KindConversionFailed, nil, "", "target type is nil")
	}

	out, err := s.convert(v, target)
	if err != nil {
		var src any = "<nil>"
		if v.IsValid() && v.CanInterface() {
			src = valueFormatter.Sprintf("%v", v.Interface())
		}

		var srcType reflect.Type
		if v.IsValid() {
			srcType = v.Type()
		}

		return reflect.Value{}, diagnostic.Wrap(diagnostic.KindConversionFailed, nil, "", err,
			"cannot convert %v (%v) to %s", src, srcType, target)
	}

	return out, nil
}

func (s *Service) convert(v reflect.Value, target reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(target), nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Zero(target), nil
		}

		v = v.Elem()
	}

	source := v.Type()

	if source.AssignableTo(target) {
		if source == target {
			return v, nil
		}

		out := reflect.New(target).Elem()
		out.Set(v)

		return out, nil
	}

	if target.Kind() == reflect.Pointer {
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return reflect.Zero(target), nil
		}

		inner, err := s.convert(v, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(inner)

		return ptr, nil
	}

	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Zero(target), nil
		}

		return s.convert(v.Elem(), target)
	}

	if v.Kind() == reflect.String && reflect.PointerTo(target).Implements(textUnmarshalerType) {
		ptr := reflect.New(target)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(v.String())); err != nil {
			return reflect.Value{}, err
		}

		return ptr.Elem(), nil
	}

	if target.Kind() == reflect.String && !isScalar(source) {
		if text, ok, err := textOf(v); ok {
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(text).Convert(target), nil
		}
	}

	if isScalar(source) && isScalar(target) {
		return primitive.Convert(v, target, s.categories)
	}

	if elementWise(source, target) {
		return s.convertElements(v, target)
	}

	if source.Kind() == target.Kind() && source.ConvertibleTo(target) {
		return v.Convert(target), nil
	}

	return reflect.Value{}, errNoPath
}

func textOf(v reflect.Value) (string, bool, error) {
	if v.Type().Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()

		return string(text), true, err
	}

	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String(), true, nil
	}

	return "", false, nil
}

func (s *Service) convertElements(v reflect.Value, target reflect.Type) (reflect.Value, error) {
	switch target.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(target), nil
		}

		out := reflect.MakeMapWithSize(target, v.Len())

		iter := v.MapRange()
		for iter.Next() {
			key, err := s.convert(iter.Key(), target.Key())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
			}

			elem, err := s.convert(iter.Value(), target.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
			}

			out.SetMapIndex(key, elem)
		}

		return out, nil

	case reflect.Array:
		if v.Len() > target.Len() {
			return reflect.Value{}, fmt.Errorf("%d elements do not fit into %s", v.Len(), target)
		}

		out := reflect.New(target).Elem()

		return out, s.copyElements(v, out)

	default:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return reflect.Zero(target), nil
		}

		out := reflect.MakeSlice(target, v.Len(), v.Len())

		return out, s.copyElements(v, out)
	}
}

func (s *Service) copyElements(src, dst reflect.Value) error {
	for i := range src.Len() {
		elem, err := s.convert(src.Index(i), dst.Type().Elem())
		if err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}

		dst.Index(i).Set(elem)
	}

	return nil
}
