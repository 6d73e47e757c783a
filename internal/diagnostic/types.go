package diagnostic

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Error is a single failure of property resolution, access, mutation or coercion.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Owner is the type the property was looked up on (if known).
	Owner reflect.Type
	// Property is the property name or dotted path (if any).
	Property string
	// Message is the human-readable detail.
	Message string
	// Suggestions are similarly named properties of Owner.
	Suggestions []string
	// Cause is the underlying error (if any).
	Cause error
}

// New creates an *Error without a cause.
func New(kind Kind, owner reflect.Type, property, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Owner:    owner,
		Property: property,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap creates an *Error caused by err. The message may be empty.
func Wrap(kind Kind, owner reflect.Type, property string, err error, format string, args ...any) *Error {
	e := New(kind, owner, property, format, args...)
	e.Cause = err

	return e
}

// WithSuggestions attaches "did you mean" candidates.
func (e *Error) WithSuggestions(suggestions []string) *Error {
	e.Suggestions = suggestions

	return e
}

// Error returns a formatted diagnostic string.
func (e *Error) Error() string {
	var b strings.Builder

	if sentinel := e.Kind.Sentinel(); sentinel != nil {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString(e.Kind.String())
	}

	if e.Property != "" {
		b.WriteString(" " + strconv.Quote(e.Property))
	}

	if e.Owner != nil {
		b.WriteString(" on " + e.Owner.String())
	}

	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}

	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(e.Suggestions, ", ") + "?)")
	}

	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}

	return b.String()
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	var res []error

	if sentinel := e.Kind.Sentinel(); sentinel != nil {
		res = append(res, sentinel)
	}

	if e.Cause != nil {
		res = append(res, e.Cause)
	}

	return res
}

// KindOf returns the kind of the first *Error in err's tree, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// Diagnostics holds independent failures collected while applying many operations.
type Diagnostics struct {
	Errors []Diagnostic
}

// Diagnostic is one collected failure.
type Diagnostic struct {
	// Code is the failure kind name, e.g. "PropertyNotFound".
	Code string
	// Path identifies which property path this relates to.
	Path string
	// Err is the failure itself.
	Err error
}

// Add records err for path. Nil errors are ignored.
func (d *Diagnostics) Add(path string, err error) {
	if err == nil {
		return
	}

	code := "Unknown"
	if kind := KindOf(err); kind != 0 {
		code = kind.String()
	}

	d.Errors = append(d.Errors, Diagnostic{
		Code: code,
		Path: path,
		Err:  err,
	})
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Err returns all collected failures joined, or nil if valid.
func (d *Diagnostics) Err() error {
	if d.IsValid() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, e)
	}

	return errors.Join(errs...)
}

// Error returns a formatted diagnostic string.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%s] %s: %v", d.Code, d.Path, d.Err)
}

// Unwrap returns the underlying failure.
func (d Diagnostic) Unwrap() error {
	return d.Err
}
