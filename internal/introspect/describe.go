package introspect

import (
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"property-graph/internal/diagnostic"
)

// TagName is the struct tag consulted for property aliases.
const TagName = "prop"

var errorType = reflect.TypeFor[error]()

// Introspectable reports whether properties can be looked up on t.
func Introspectable(t reflect.Type) bool {
	t = IndirectType(t)
	if t == nil {
		return false
	}

	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Interface:
		return false
	default:
		return reflect.PointerTo(t).NumMethod() > 0
	}
}

// Describe introspects t for a property called name. It returns a nil
// descriptor when t has no such property, and an IntrospectionFailed
// diagnostic when t cannot carry properties at all.
func Describe(t reflect.Type, name string) (*Descriptor, error) {
	t = IndirectType(t)

	if !Introspectable(t) {
		return nil, diagnostic.New(diagnostic.KindIntrospectionFailed, t, name,
			"type has no fields, string map keys or methods")
	}

	if t.Kind() == reflect.Map {
		return &Descriptor{
			Owner:     t,
			Name:      name,
			ValueType: t.Elem(),
			mapKey:    true,
		}, nil
	}

	if name == "" {
		return nil, nil
	}

	d := &Descriptor{Owner: t, Name: name}

	exported := upperFirst(name)
	d.getter, d.ValueType = findGetter(t, exported)

	if t.Kind() == reflect.Struct {
		if f, ok := findField(t, name); ok {
			d.field = f.Index

			if d.ValueType == nil {
				d.ValueType = f.Type
			} else if d.ValueType != f.Type {
				// the getter owns the property, a field of another type is unrelated
				d.field = nil
			}
		}
	}

	if setter, paramType := findSetter(t, exported); setter != nil {
		if d.ValueType == nil || d.ValueType == paramType {
			d.setter = setter
			d.ValueType = paramType
		}
	}

	if d.ValueType == nil {
		return nil, nil
	}

	return d, nil
}

func findGetter(t reflect.Type, exported string) (*method, reflect.Type) {
	for _, prefix := range []string{"", "Get", "Is"} {
		m, ptrRecv, ok := lookupMethod(t, prefix+exported)
		if !ok {
			continue
		}

		mt := m.Type
		if mt.NumIn() != 1 {
			continue
		}

		withErr := false

		switch mt.NumOut() {
		case 1:
		case 2:
			if mt.Out(1) != errorType {
				continue
			}

			withErr = true
		default:
			continue
		}

		if prefix == "Is" && mt.Out(0).Kind() != reflect.Bool {
			continue
		}

		return &method{name: m.Name, ptrRecv: ptrRecv, withErr: withErr}, mt.Out(0)
	}

	return nil, nil
}

func findSetter(t reflect.Type, exported string) (*method, reflect.Type) {
	m, ptrRecv, ok := lookupMethod(t, "Set"+exported)
	if !ok {
		return nil, nil
	}

	mt := m.Type
	if mt.NumIn() != 2 {
		return nil, nil
	}

	withErr := false

	switch mt.NumOut() {
	case 0:
	case 1:
		if mt.Out(0) != errorType {
			return nil, nil
		}

		withErr = true
	default:
		return nil, nil
	}

	return &method{name: m.Name, ptrRecv: ptrRecv, withErr: withErr}, mt.In(1)
}

// lookupMethod searches the method set of *t, reporting whether the method
// needs a pointer receiver.
func lookupMethod(t reflect.Type, name string) (reflect.Method, bool, bool) {
	if m, ok := t.MethodByName(name); ok {
		return m, false, true
	}

	m, ok := reflect.PointerTo(t).MethodByName(name)

	return m, true, ok
}

func findField(t reflect.Type, name string) (reflect.StructField, bool) {
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}

		tag, hasTag := f.Tag.Lookup(TagName)
		if tag == "-" {
			continue
		}

		if hasTag && tag != "" {
			if tag == name || f.Name == name {
				return f, true
			}

			continue
		}

		if f.Name == name || BeanName(f.Name) == name {
			return f, true
		}
	}

	return reflect.StructField{}, false
}

// Properties lists the property names of t in sorted order: bean names of
// exported fields (or their tag aliases) and of getter/setter methods.
// Map types have no fixed property names.
func Properties(t reflect.Type) []string {
	t = IndirectType(t)
	if !Introspectable(t) || t.Kind() == reflect.Map {
		return nil
	}

	seen := map[string]struct{}{}

	if t.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(t) {
			if !f.IsExported() {
				continue
			}

			tag, hasTag := f.Tag.Lookup(TagName)

			switch {
			case tag == "-":
			case hasTag && tag != "":
				seen[tag] = struct{}{}
			default:
				seen[BeanName(f.Name)] = struct{}{}
			}
		}
	}

	pt := reflect.PointerTo(t)
	for i := range pt.NumMethod() {
		name := pt.Method(i).Name

		for _, prefix := range []string{"Set", "Get", "Is", ""} {
			rest, ok := strings.CutPrefix(name, prefix)
			if !ok || rest == "" {
				continue
			}

			prop := BeanName(rest)
			if d, _ := Describe(t, prop); d != nil {
				seen[prop] = struct{}{}

				break
			}
		}
	}

	res := make([]string, 0, len(seen))
	for name := range seen {
		res = append(res, name)
	}

	sort.Strings(res)

	return res
}

// BeanName lower-cases the first rune of a Go identifier unless it starts
// with an acronym: "Name" → "name", "URL" → "URL", "ID" → "ID".
func BeanName(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(first) && unicode.IsUpper(second) {
		return s
	}

	return string(unicode.ToLower(first)) + s[size:]
}

func upperFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(first)) + s[size:]
}
