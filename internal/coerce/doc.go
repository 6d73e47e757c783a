// Package coerce converts loosely typed values into strongly typed property
// targets.
//
// Conversion ladder (first match wins):
//  1. nil → zero value of the target
//  2. assignable → the value itself
//  3. pointer target → convert to the element and take its address;
//     pointer source → dereference (nil dereferences to the zero value)
//  4. string source into a type implementing encoding.TextUnmarshaler
//  5. non-scalar source into a string target through encoding.TextMarshaler
//     or fmt.Stringer
//  6. scalar pairs through primitive.Convert, gated by primitive categories
//  7. slices, arrays and maps element by element
//  8. Go conversion between types of the same kind
//
// Compatibility scores the same ladder without converting anything.
package coerce
