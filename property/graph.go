package property

import (
	"reflect"
	"strconv"

	"property-graph/internal/diagnostic"
	"property-graph/internal/introspect"
	"property-graph/internal/mapping"
)

// hop is one intermediate step of a graph: it reads the next node and can
// store a node back when one had to be allocated or copied.
type hop struct {
	name   string
	reader valueReader
	writer valueWriter
}

// chain builds the intermediate hops of a dotted path. Hops stay bound to a
// type while the declared value types can be introspected and resolve per
// instance afterwards. It returns the owner type of the last segment, or nil.
func (f *Factory) chain(owner reflect.Type, path string, segments mapping.Path, strict bool) ([]hop, reflect.Type, error) {
	parent := segments.Parent()
	hops := make([]hop, 0, len(parent))
	cur := owner

	for i, name := range parent {
		if cur == nil || (i > 0 && !introspect.Introspectable(cur)) {
			cur = nil

			hops = append(hops, hop{
				name:   name,
				reader: f.newUntypedAccessor(name, strict),
				writer: f.newUntypedMutator(name, false, false),
			})

			continue
		}

		a, err := f.newTypedAccessor(cur, name, strict)
		if err != nil {
			return nil, nil, locate(err, path, name)
		}

		m, err := f.newTypedMutator(cur, name, false, false)
		if err != nil {
			return nil, nil, locate(err, path, name)
		}

		hops = append(hops, hop{name: name, reader: a, writer: m})
		cur = a.ValueType()
	}

	if cur != nil && !introspect.Introspectable(cur) {
		cur = nil
	}

	return hops, cur, nil
}

// GraphAccessor reads the property at the end of a dotted path.
type GraphAccessor struct {
	path string
	hops []hop
	leaf Accessor
}

func (f *Factory) newGraphAccessor(owner reflect.Type, path string, segments mapping.Path, strict bool) (*GraphAccessor, error) {
	hops, last, err := f.chain(owner, path, segments, strict)
	if err != nil {
		return nil, err
	}

	name := segments.Leaf()

	var leaf Accessor = f.newUntypedAccessor(name, strict)
	if last != nil {
		leaf, err = f.newTypedAccessor(last, name, strict)
		if err != nil {
			return nil, locate(err, path, name)
		}
	}

	return &GraphAccessor{path: path, hops: hops, leaf: leaf}, nil
}

// Name returns the dotted path.
func (g *GraphAccessor) Name() string { return g.path }

// ValueType returns the declared type of the last property when every hop
// is bound to a type, nil otherwise.
func (g *GraphAccessor) ValueType() reflect.Type { return g.leaf.ValueType() }

// Read follows the path from root. A nil node on the way reads as nil unless
// the accessor is strict.
func (g *GraphAccessor) Read(root any) (any, error) {
	cur := reflect.ValueOf(root)

	for _, h := range g.hops {
		next, _, err := h.reader.readValue(cur)
		if err != nil {
			return nil, locate(err, g.path, h.name)
		}

		cur = next
	}

	out, err := valueOut(g.leaf.(valueReader).readValue(cur))
	if err != nil {
		return nil, locate(err, g.path, g.leaf.Name())
	}

	return out, nil
}

// GraphMutator writes the property at the end of a dotted path, allocating
// missing intermediate nodes when there is a value to store.
type GraphMutator struct {
	path        string
	hops        []hop
	leaf        Mutator
	required    bool
	constructor Constructor
}

func (f *Factory) newGraphMutator(
	owner reflect.Type,
	path string,
	segments mapping.Path,
	required, autoConvert bool,
) (*GraphMutator, error) {
	hops, last, err := f.chain(owner, path, segments, required)
	if err != nil {
		return nil, err
	}

	name := segments.Leaf()

	var leaf Mutator = f.newUntypedMutator(name, required, autoConvert)
	if last != nil {
		leaf, err = f.newTypedMutator(last, name, required, autoConvert)
		if err != nil {
			return nil, locate(err, path, name)
		}
	}

	return &GraphMutator{
		path:        path,
		hops:        hops,
		leaf:        leaf,
		required:    required,
		constructor: f.constructor,
	}, nil
}

// Name returns the dotted path.
func (g *GraphMutator) Name() string { return g.path }

// ValueType returns the declared type of the last property when every hop
// is bound to a type, nil otherwise.
func (g *GraphMutator) ValueType() reflect.Type { return g.leaf.ValueType() }

// Write stores value at the end of the path starting from root.
//
// A nil node met on the way is replaced by a fresh instance of its declared
// type, stored back into its owner, when value is not nil. With a nil value
// nothing is allocated and the walk goes on with the nil node, which the
// remaining hops treat as a nil instance. The first failure aborts the walk.
func (g *GraphMutator) Write(root any, value any) error {
	v := unwrap(reflect.ValueOf(root))

	if isNil(v) {
		if g.required {
			return diagnostic.New(diagnostic.KindIllegalArgument, nil, g.path, "root is nil")
		}

		return nil
	}

	_, err := g.writeFrom(v, 0, reflect.ValueOf(value))

	return err
}

func (g *GraphMutator) writeFrom(cur reflect.Value, i int, value reflect.Value) (bool, error) {
	if i == len(g.hops) {
		applied, err := g.leaf.(valueWriter).writeValue(cur, value)
		if err != nil {
			return false, locate(err, g.path, g.leaf.Name())
		}

		return applied, nil
	}

	h := g.hops[i]

	next, d, err := h.reader.readValue(cur)
	if err != nil {
		return false, locate(err, g.path, h.name)
	}

	next = unwrap(next)

	if isNil(next) && !isNil(value) && d != nil {
		created, err := g.constructor.New(d.ValueType)
		if err != nil {
			return false, locate(err, g.path, h.name)
		}

		if created.Kind() == reflect.Struct {
			// stored by the copy path below once it is filled
			next = reflect.ValueOf(created.Interface())
		} else {
			if ok, err := g.attach(h, cur, created); !ok {
				return false, err
			}

			next = unwrap(created)
		}
	}

	// struct values read from getters or map entries are copies: update the
	// copy and store it back
	if next.IsValid() && next.Kind() == reflect.Struct && !next.CanAddr() {
		tmp := reflect.New(next.Type())
		tmp.Elem().Set(next)

		applied, err := g.writeFrom(tmp, i+1, value)
		if err != nil || !applied {
			return applied, err
		}

		return g.attach(h, cur, tmp.Elem())
	}

	return g.writeFrom(next, i+1, value)
}

// attach stores node into the property of owner that hop h reads.
func (g *GraphMutator) attach(h hop, owner, node reflect.Value) (bool, error) {
	applied, err := h.writer.writeValue(owner, node)
	if err != nil {
		return false, locate(err, g.path, h.name)
	}

	if !applied && g.required {
		return false, diagnostic.New(diagnostic.KindMutationFailed, nil, g.path,
			"cannot store %s into %q", node.Type(), h.name)
	}

	return applied, nil
}

// locate names the whole path in a failure of one of its segments.
func locate(err error, path, segment string) error {
	e, ok := err.(*diagnostic.Error)
	if !ok || e.Property != segment || path == segment {
		return err
	}

	cp := *e
	cp.Property = path

	if cp.Message == "" {
		cp.Message = "at " + strconv.Quote(segment)
	} else {
		cp.Message = "at " + strconv.Quote(segment) + ": " + cp.Message
	}

	return &cp
}
