package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Assignment sets one property path to a value.
type Assignment struct {
	Path  string
	Value any
}

// Sheet is an ordered list of assignments.
type Sheet struct {
	// Source names where the sheet was loaded from (if anywhere).
	Source      string
	Assignments []Assignment
}

// Paths returns the assignment paths in order.
func (s *Sheet) Paths() []string {
	res := make([]string, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		res = append(res, a.Path)
	}

	return res
}

// ParseYAML parses a YAML mapping into a sheet, keeping document order.
func ParseYAML(data []byte) (*Sheet, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet YAML: %w", err)
	}

	sheet := &Sheet{}

	if len(doc.Content) == 0 {
		return sheet, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("sheet YAML must be a mapping, got %s", nodeKind(root))
	}

	err = flattenNode(root, "", sheet)
	if err != nil {
		return nil, err
	}

	return sheet, nil
}

func flattenNode(node *yaml.Node, prefix string, sheet *Sheet) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: sheet keys must be scalars", keyNode.Line)
		}

		path := Join(prefix, keyNode.Value)

		if _, err := ParsePath(path); err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}

		if valueNode.Kind == yaml.AliasNode {
			valueNode = valueNode.Alias
		}

		if valueNode.Kind == yaml.MappingNode && len(valueNode.Content) > 0 {
			if err := flattenNode(valueNode, path, sheet); err != nil {
				return err
			}

			continue
		}

		var value any

		err := valueNode.Decode(&value)
		if err != nil {
			return fmt.Errorf("line %d: invalid value for %s: %w", valueNode.Line, path, err)
		}

		sheet.Assignments = append(sheet.Assignments, Assignment{Path: path, Value: value})
	}

	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

// ParseTOML parses a TOML document into a sheet, keeping key order.
func ParseTOML(data []byte) (*Sheet, error) {
	var doc map[string]any

	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet TOML: %w", err)
	}

	sheet := &Sheet{}
	seen := map[string]struct{}{}

	for _, key := range md.Keys() {
		value, ok := lookup(doc, key)
		if !ok {
			continue
		}

		if _, isTable := value.(map[string]any); isTable {
			continue
		}

		path := strings.Join(key, Separator)
		seen[path] = struct{}{}
		sheet.Assignments = append(sheet.Assignments, Assignment{Path: path, Value: value})
	}

	// leaves the decoder did not list as keys, e.g. inside inline tables
	for _, a := range flattenMap(doc, "") {
		if _, ok := seen[a.Path]; !ok {
			sheet.Assignments = append(sheet.Assignments, a)
		}
	}

	for _, a := range sheet.Assignments {
		if _, err := ParsePath(a.Path); err != nil {
			return nil, err
		}
	}

	return sheet, nil
}

// lookup finds key in nested tables. It fails for keys inside arrays of
// tables, whose values belong to the array.
func lookup(doc map[string]any, key toml.Key) (any, bool) {
	var cur any = doc

	for _, part := range key {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}

		cur, ok = table[part]
		if !ok {
			return nil, false
		}
	}

	return cur, true
}

func flattenMap(m map[string]any, prefix string) []Assignment {
	var res []Assignment

	for _, k := range slices.Sorted(maps.Keys(m)) {
		path := Join(prefix, k)

		if sub, ok := m[k].(map[string]any); ok && len(sub) > 0 {
			res = append(res, flattenMap(sub, path)...)
			continue
		}

		res = append(res, Assignment{Path: path, Value: m[k]})
	}

	return res
}

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown document format")
