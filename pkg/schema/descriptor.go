package schema

// Kind identifies a descriptor variant.
type Kind int

const (
	// KindPrimitive is a JSON primitive ("string", "integer", "number",
	// "boolean" or "null").
	KindPrimitive Kind = iota
	// KindObject is an object with named fields.
	KindObject
	// KindArray is an array of a single element shape.
	KindArray
	// KindOptional marks its inner shape as not required.
	KindOptional
	// KindOpaque accepts any JSON value. It is always lowered to an
	// object-type schema node in the derived document.
	KindOpaque
	// KindRef references a named object defined elsewhere in the same tree.
	KindRef
)

// String returns the variant name for error messages.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindOptional:
		return "optional"
	case KindOpaque:
		return "opaque"
	case KindRef:
		return "ref"
	}
	return "unknown"
}

// Descriptor is a structural description of a result shape. It is a
// tagged-variant tree: which fields are meaningful depends on Kind.
// Descriptors are immutable once built; Derive never modifies its input.
type Descriptor struct {
	Kind Kind

	// Primitive is the JSON type name. Set for KindPrimitive.
	Primitive string

	// Name identifies a KindObject for hoisting into the definitions map,
	// or the referenced definition for KindRef. Unnamed objects are
	// inlined at their occurrence site.
	Name string

	// Fields lists an object's properties in declaration order.
	// Set for KindObject.
	Fields []Field

	// Elem is the element shape for KindArray and the inner shape for
	// KindOptional.
	Elem *Descriptor
}

// Field maps a property name to its shape.
type Field struct {
	Name       string
	Descriptor *Descriptor
}

// Primitive returns a descriptor for the given JSON primitive type name.
func Primitive(jsonType string) *Descriptor {
	return &Descriptor{Kind: KindPrimitive, Primitive: jsonType}
}

// String returns a "string" primitive descriptor.
func String() *Descriptor { return Primitive("string") }

// Integer returns an "integer" primitive descriptor.
func Integer() *Descriptor { return Primitive("integer") }

// Number returns a "number" primitive descriptor.
func Number() *Descriptor { return Primitive("number") }

// Boolean returns a "boolean" primitive descriptor.
func Boolean() *Descriptor { return Primitive("boolean") }

// Object returns an object descriptor. A non-empty name causes nested
// occurrences to be emitted once under definitions and referenced by $ref.
func Object(name string, fields ...Field) *Descriptor {
	return &Descriptor{Kind: KindObject, Name: name, Fields: fields}
}

// Array returns an array descriptor over the given element shape.
func Array(elem *Descriptor) *Descriptor {
	return &Descriptor{Kind: KindArray, Elem: elem}
}

// Optional marks the inner shape as not required.
func Optional(inner *Descriptor) *Descriptor {
	return &Descriptor{Kind: KindOptional, Elem: inner}
}

// Opaque returns a descriptor accepting any JSON value.
func Opaque() *Descriptor { return &Descriptor{Kind: KindOpaque} }

// Ref returns a reference to a named object defined elsewhere in the tree.
func Ref(name string) *Descriptor { return &Descriptor{Kind: KindRef, Name: name} }
