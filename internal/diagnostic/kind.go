package diagnostic

import "errors"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a failure.
type Kind int

const (
	_ Kind = iota

	KindPropertyNotFound
	KindAccessFailed
	KindMutationFailed
	KindConversionFailed
	KindConfiguration
	KindIntrospectionFailed
	KindIllegalArgument
	KindInstantiationFailed
)

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrAccessFailed        = errors.New("property access failed")
	ErrMutationFailed      = errors.New("property mutation failed")
	ErrConversionFailed    = errors.New("conversion failed")
	ErrConfiguration       = errors.New("invalid configuration")
	ErrIntrospectionFailed = errors.New("introspection failed")
	ErrIllegalArgument     = errors.New("illegal argument")
	ErrInstantiationFailed = errors.New("instantiation failed")
)

// Sentinel returns the error every *Error of this kind unwraps to.
func (k Kind) Sentinel() error {
	switch k {
	case KindPropertyNotFound:
		return ErrPropertyNotFound
	case KindAccessFailed:
		return ErrAccessFailed
	case KindMutationFailed:
		return ErrMutationFailed
	case KindConversionFailed:
		return ErrConversionFailed
	case KindConfiguration:
		return ErrConfiguration
	case KindIntrospectionFailed:
		return ErrIntrospectionFailed
	case KindIllegalArgument:
		return ErrIllegalArgument
	case KindInstantiationFailed:
		return ErrInstantiationFailed
	default:
		return nil
	}
}
