package mapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Separator splits the segments of a property path.
const Separator = "."

// Path is a parsed property path.
type Path []string

// String joins the segments back into a dotted path.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Parent returns every segment but the last.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}

	return p[:len(p)-1]
}

// Leaf returns the last segment.
func (p Path) Leaf() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// IsNested reports whether the path has more than one segment.
func (p Path) IsNested() bool {
	return len(p) > 1
}

// ParsePath splits a dotted property path into its segments.
// Supports: "name", "customer.name", "customer.address.city".
func ParsePath(path string) (Path, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var segments Path

	for part := range strings.SplitSeq(path, Separator) {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if strings.IndexFunc(part, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("invalid path %q: segment %q contains white space", path, part)
		}

		segments = append(segments, part)
	}

	return segments, nil
}

// Join builds a path from a prefix and a name. An empty prefix yields name.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + Separator + name
}
