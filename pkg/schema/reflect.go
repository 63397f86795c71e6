package schema

import (
	"encoding/json"
	"reflect"
	"strings"
)

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// DescriptorOf builds a descriptor from a concrete result value using
// reflection over its struct fields. It is a convenience for callers whose
// result shapes are ordinary Go structs; hand-authored or generated
// descriptors feed Derive directly.
//
// Field names follow json struct tags. Pointer fields and fields tagged
// omitempty become optional. Fields typed any or json.RawMessage become
// opaque. Nested named structs become named objects, so they surface in the
// derived document as definitions referenced by $ref.
func DescriptorOf(v any) (*Descriptor, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, derivationError("descriptor source must be a struct, got %v", reflect.TypeOf(v))
	}
	return descriptorOfType(t, make(map[reflect.Type]bool))
}

func descriptorOfType(t reflect.Type, seen map[reflect.Type]bool) (*Descriptor, error) {
	if t == rawMessageType {
		return Opaque(), nil
	}

	switch t.Kind() {
	case reflect.String:
		return String(), nil
	case reflect.Bool:
		return Boolean(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer(), nil
	case reflect.Float32, reflect.Float64:
		return Number(), nil
	case reflect.Interface:
		return Opaque(), nil
	case reflect.Map:
		return Opaque(), nil
	case reflect.Pointer:
		inner, err := descriptorOfType(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	case reflect.Slice, reflect.Array:
		elem, err := descriptorOfType(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return Array(elem), nil
	case reflect.Struct:
		return descriptorOfStruct(t, seen)
	}

	return nil, derivationError("unsupported field type %v", t)
}

func descriptorOfStruct(t reflect.Type, seen map[reflect.Type]bool) (*Descriptor, error) {
	if seen[t] {
		// Recursive shape: refer back to the named definition.
		return Ref(t.Name()), nil
	}
	seen[t] = true
	defer delete(seen, t)

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		optional := false
		if tag, ok := sf.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					optional = true
				}
			}
		}

		d, err := descriptorOfType(sf.Type, seen)
		if err != nil {
			return nil, err
		}
		if optional && d.Kind != KindOptional {
			d = Optional(d)
		}
		fields = append(fields, Field{Name: name, Descriptor: d})
	}

	return Object(t.Name(), fields...), nil
}
