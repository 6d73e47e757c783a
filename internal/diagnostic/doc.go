// Package diagnostic provides the error taxonomy shared by property
// resolution, access, mutation and coercion.
//
// Every failure is an *Error carrying:
//   - the Kind of failure (PropertyNotFound, AccessFailed, MutationFailed, ...)
//   - the owner type and property path involved, when known
//   - "did you mean" suggestions for unknown property names
//   - the underlying cause
//
// *Error unwraps to both the sentinel of its Kind and its cause, so callers
// test failures with errors.Is(err, diagnostic.ErrPropertyNotFound) and still
// reach the original error.
//
// Diagnostics collects independent failures, e.g. one per assignment of a
// property sheet, and joins them into a single error.
package diagnostic
