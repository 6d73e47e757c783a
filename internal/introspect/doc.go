// Package introspect discovers named properties of Go types at run time and
// memoizes the result.
//
// A property of a struct type T named p resolves to, in order of preference:
//   - methods of *T: reader P(), GetP() or IsP() (bool only), returning V or
//     (V, error); writer SetP(V) returning nothing or error
//   - an exported field (promoted fields included) whose Go name is p, whose
//     bean name is p ("Name" → "name", "URL" stays "URL"), or whose
//     `prop:"p"` tag names it; `prop:"-"` hides a field
//
// Methods win over fields per capability, so an unexported field behind a
// getter/setter pair and a read-only field with a validating setter both work.
//
// Maps with string-kinded keys expose every key as a property of the
// map's element type.
//
// Descriptors are cached per (type, name) in a Cache. Default is the
// process-wide instance; NewCache builds an isolated one.
package introspect
