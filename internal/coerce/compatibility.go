package coerce

import (
	"encoding"
	"fmt"
	"reflect"

	"property-graph/primitive"
)

// Compatibility represents the level of compatibility between two types.
type Compatibility int

const (
	// Incompatible means no conversion path exists.
	Incompatible Compatibility = iota
	// NeedsCoercion means the value must go through the conversion ladder.
	NeedsCoercion
	// Convertible means a plain Go conversion between same-kind types suffices.
	Convertible
	// Assignable means the source can be directly assigned to the target.
	Assignable
	// Identical means the types are exactly the same.
	Identical
)

const (
	VerdictIdentical     = "identical"
	VerdictAssignable    = "assignable"
	VerdictConvertible   = "convertible"
	VerdictNeedsCoercion = "needs_coercion"
	VerdictIncompatible  = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c Compatibility) String() string {
	switch c {
	case Identical:
		return VerdictIdentical
	case Assignable:
		return VerdictAssignable
	case Convertible:
		return VerdictConvertible
	case NeedsCoercion:
		return VerdictNeedsCoercion
	case Incompatible:
		return VerdictIncompatible
	default:
		return fmt.Sprintf("Compatibility(%d)", int(c))
	}
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
)

// Score determines how a value of type source can reach type target when
// converted with categories.
func Score(source, target reflect.Type, categories primitive.CategoryEnum) Compatibility {
	switch {
	case source == nil || target == nil:
		return Incompatible
	case source == target:
		return Identical
	case source.AssignableTo(target):
		return Assignable
	case source.Kind() == target.Kind() && source.ConvertibleTo(target) && !isScalar(source):
		return Convertible
	}

	if target.Kind() == reflect.Pointer && Score(source, target.Elem(), categories) > Incompatible {
		return NeedsCoercion
	}

	if source.Kind() == reflect.Pointer && Score(source.Elem(), target, categories) > Incompatible {
		return NeedsCoercion
	}

	if source.Kind() == reflect.String && reflect.PointerTo(target).Implements(textUnmarshalerType) {
		return NeedsCoercion
	}

	if target.Kind() == reflect.String && primitive.FromReflectType(source) == 0 &&
		(source.Implements(textMarshalerType) || source.Implements(stringerType)) {
		return NeedsCoercion
	}

	if isScalar(source) && isScalar(target) {
		if scalarAllowed(source, target, categories) {
			return NeedsCoercion
		}

		return Incompatible
	}

	if elementWise(source, target) && Score(source.Elem(), target.Elem(), categories) > Incompatible {
		if source.Kind() != reflect.Map || Score(source.Key(), target.Key(), categories) > Incompatible {
			return NeedsCoercion
		}
	}

	if source.Kind() == reflect.Interface {
		// the dynamic type decides at conversion time
		return NeedsCoercion
	}

	if source.Kind() == target.Kind() && source.ConvertibleTo(target) {
		return Convertible
	}

	return Incompatible
}

func isScalar(t reflect.Type) bool {
	return primitive.FromReflectType(t) != 0
}

func scalarAllowed(source, target reflect.Type, categories primitive.CategoryEnum) bool {
	from, to := primitive.FromReflectType(source), primitive.FromReflectType(target)
	if categories.Allows(primitive.ConversionPair{From: from, To: to}) {
		return true
	}

	if from == primitive.KindPrimitiveEnum || to == primitive.KindPrimitiveEnum {
		return categories.Allows(primitive.ConversionPair{
			From: primitive.Underlying(source),
			To:   primitive.Underlying(target),
		})
	}

	return false
}

func elementWise(source, target reflect.Type) bool {
	switch target.Kind() {
	case reflect.Slice, reflect.Array:
		return source.Kind() == reflect.Slice || source.Kind() == reflect.Array
	case reflect.Map:
		return source.Kind() == reflect.Map
	default:
		return false
	}
}
