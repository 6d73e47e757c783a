// Package match ranks property names by similarity to an unknown name so
// that "property not found" errors can propose what the caller likely meant.
//
// Key functions:
//   - NormalizeIdent: case-folds identifiers and strips separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest candidate names above a similarity threshold
package match
