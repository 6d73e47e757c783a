package property

import (
	"property-graph/internal/diagnostic"
)

// Error is the error type returned by every operation of this package.
type Error = diagnostic.Error

// Kind classifies an Error.
type Kind = diagnostic.Kind

const (
	KindPropertyNotFound    = diagnostic.KindPropertyNotFound
	KindAccessFailed        = diagnostic.KindAccessFailed
	KindMutationFailed      = diagnostic.KindMutationFailed
	KindConversionFailed    = diagnostic.KindConversionFailed
	KindConfiguration       = diagnostic.KindConfiguration
	KindIntrospectionFailed = diagnostic.KindIntrospectionFailed
	KindIllegalArgument     = diagnostic.KindIllegalArgument
	KindInstantiationFailed = diagnostic.KindInstantiationFailed
)

var (
	ErrPropertyNotFound    = diagnostic.ErrPropertyNotFound
	ErrAccessFailed        = diagnostic.ErrAccessFailed
	ErrMutationFailed      = diagnostic.ErrMutationFailed
	ErrConversionFailed    = diagnostic.ErrConversionFailed
	ErrConfiguration       = diagnostic.ErrConfiguration
	ErrIntrospectionFailed = diagnostic.ErrIntrospectionFailed
	ErrIllegalArgument     = diagnostic.ErrIllegalArgument
	ErrInstantiationFailed = diagnostic.ErrInstantiationFailed
)

// KindOf returns the kind of the outermost *Error in err's tree, or zero.
func KindOf(err error) Kind {
	return diagnostic.KindOf(err)
}
