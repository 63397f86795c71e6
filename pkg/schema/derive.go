package schema

import (
	"encoding/json"
	"sort"
)

// Derive turns a descriptor into a pretty-printed JSON Schema document.
//
// Opaque fields are lowered to an explicit {"type":"object"} node rather than
// an unconstrained placeholder: "some object" is useful instruction to a
// model, "anything" is not. Callers whose opaque fields may hold arrays or
// scalars should avoid opaque fields where a broader shape is required.
//
// The document carries no top-level $schema or title metadata, named nested
// objects are emitted once under definitions and referenced by $ref, and the
// output is indented with two spaces. Identical descriptors yield
// byte-identical output.
func Derive(d *Descriptor) (string, error) {
	if d == nil {
		return "", derivationError("nil descriptor")
	}

	b := &builder{
		definitions: make(map[string]any),
		building:    make(map[string]bool),
		refs:        make(map[string]bool),
	}

	lowered, err := b.lower(d, true)
	if err != nil {
		return "", err
	}

	tree, ok := lowered.(map[string]any)
	if !ok {
		// Opaque root lowers straight to its object constraint.
		tree = map[string]any{"type": "object"}
	}

	// A recursive root shape references itself before any nested occurrence
	// could hoist it; lower it once more into its own definition so the
	// reference resolves.
	if d.Kind == KindObject && d.Name != "" && b.refs[d.Name] {
		if _, exists := b.definitions[d.Name]; !exists {
			def, err := b.lowerObject(d)
			if err != nil {
				return "", err
			}
			b.definitions[d.Name] = def
		}
	}

	for name := range b.refs {
		if _, exists := b.definitions[name]; !exists {
			return "", derivationError("$ref to undefined object %q", name)
		}
	}
	if len(b.definitions) > 0 {
		tree["definitions"] = b.definitions
	}

	fixAnyValueNodes(tree)

	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", &Error{Code: ErrCodeSerialization, Message: "marshaling schema tree", Err: err}
	}
	return string(out), nil
}

// builder tracks definitions hoisted out of the tree during lowering.
type builder struct {
	definitions map[string]any
	building    map[string]bool
	refs        map[string]bool
}

// lower converts one descriptor node to its raw schema form. Opaque nodes
// lower to the boolean true placeholder and are rewritten by
// fixAnyValueNodes afterwards.
func (b *builder) lower(d *Descriptor, root bool) (any, error) {
	if d == nil {
		return nil, derivationError("nil descriptor")
	}

	switch d.Kind {
	case KindPrimitive:
		switch d.Primitive {
		case "string", "integer", "number", "boolean", "null":
			return map[string]any{"type": d.Primitive}, nil
		}
		return nil, derivationError("unknown primitive type %q", d.Primitive)

	case KindObject:
		if root || d.Name == "" {
			return b.lowerObject(d)
		}
		return b.defineObject(d)

	case KindArray:
		if d.Elem == nil {
			return nil, derivationError("array descriptor has no element shape")
		}
		items, err := b.lower(d.Elem, false)
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "array", "items": items}, nil

	case KindOptional:
		// Optionality only affects the enclosing object's required list;
		// a bare optional lowers to its inner shape.
		if d.Elem == nil {
			return nil, derivationError("optional descriptor has no inner shape")
		}
		return b.lower(d.Elem, false)

	case KindOpaque:
		return true, nil

	case KindRef:
		if d.Name == "" {
			return nil, derivationError("ref descriptor has no target name")
		}
		b.refs[d.Name] = true
		return map[string]any{"$ref": "#/definitions/" + d.Name}, nil
	}

	return nil, derivationError("unknown descriptor kind %d", int(d.Kind))
}

// lowerObject builds the inline schema node for an object descriptor.
func (b *builder) lowerObject(d *Descriptor) (map[string]any, error) {
	properties := make(map[string]any, len(d.Fields))
	var required []string

	for _, field := range d.Fields {
		if field.Name == "" {
			return nil, derivationError("object %q has a field with an empty name", d.Name)
		}
		if _, dup := properties[field.Name]; dup {
			return nil, derivationError("object %q has duplicate field %q", d.Name, field.Name)
		}

		inner := field.Descriptor
		optional := false
		for inner != nil && inner.Kind == KindOptional {
			optional = true
			inner = inner.Elem
		}
		if inner == nil {
			return nil, derivationError("field %q has no descriptor", field.Name)
		}

		lowered, err := b.lower(inner, false)
		if err != nil {
			return nil, err
		}
		properties[field.Name] = lowered
		if !optional {
			required = append(required, field.Name)
		}
	}

	node := map[string]any{"type": "object"}
	if len(properties) > 0 {
		node["properties"] = properties
	}
	if len(required) > 0 {
		sort.Strings(required)
		node["required"] = required
	}
	return node, nil
}

// defineObject hoists a named object into definitions and returns a $ref to
// it. The first occurrence of a name wins; later occurrences of the same name
// resolve to the same definition.
func (b *builder) defineObject(d *Descriptor) (map[string]any, error) {
	ref := map[string]any{"$ref": "#/definitions/" + d.Name}

	if _, exists := b.definitions[d.Name]; exists || b.building[d.Name] {
		return ref, nil
	}

	b.building[d.Name] = true
	node, err := b.lowerObject(d)
	delete(b.building, d.Name)
	if err != nil {
		return nil, err
	}

	b.definitions[d.Name] = node
	b.refs[d.Name] = true
	return ref, nil
}

// fixAnyValueNodes rewrites every boolean-true property placeholder, at every
// level of the tree, into an explicit object-type schema node.
func fixAnyValueNodes(node any) {
	m, ok := node.(map[string]any)
	if !ok {
		return
	}

	if properties, ok := m["properties"].(map[string]any); ok {
		for name, sub := range properties {
			if accept, ok := sub.(bool); ok && accept {
				properties[name] = map[string]any{"type": "object"}
				continue
			}
			fixAnyValueNodes(sub)
		}
	}

	if items, ok := m["items"]; ok {
		if accept, ok := items.(bool); ok && accept {
			m["items"] = map[string]any{"type": "object"}
		} else {
			fixAnyValueNodes(items)
		}
	}

	if definitions, ok := m["definitions"].(map[string]any); ok {
		for _, def := range definitions {
			fixAnyValueNodes(def)
		}
	}
}
