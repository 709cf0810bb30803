package shapecheck

import (
	"reflect"
	"sort"
)

// Reserved keys. Their presence routes a map to the explicit decoder instead
// of the implicit-object rule, so shorthand objects must avoid them as
// property names (documented limitation, not re-validated here).
const (
	keyDataType             = "dataType"
	keyProperties           = "properties"
	keyItems                = "items"
	keyOneOf                = "oneOf"
	keyOptional             = "optional"
	keyAllowedValues        = "allowedValues"
	keyAdditionalProperties = "additionalProperties"
)

var reservedKeys = map[string]struct{}{
	keyDataType:             {},
	keyProperties:           {},
	keyItems:                {},
	keyOneOf:                {},
	keyOptional:             {},
	keyAllowedValues:        {},
	keyAdditionalProperties: {},
}

// Normalize canonicalizes any accepted surface schema representation. It is
// total and idempotent: canonical schemas pass through untouched, shorthand is
// expanded by shape inspection, and unrecognized shapes become an invalid node
// that the engine reports as invalid_schema.
//
// Accepted surface forms:
//   - a bare PropType (or string tag): a leaf schema
//   - a slice: array shorthand; multiple elements imply a union of elements
//   - a map without reserved keys: an implicit object schema whose
//     additionalProperties default follows Opt.Permissive
//   - a map carrying reserved keys: an explicit leaf/object/array/union schema
//   - *Schema / Schema: already canonical
func Normalize(surface any, opts ...Opt) *Schema {
	n := normalizer{opt: lastOpt(opts)}
	return n.normalize(surface, 0)
}

type normalizer struct {
	opt Opt
}

func (n *normalizer) normalize(v any, depth int) *Schema {
	if depth > n.opt.MaxDepth {
		return &Schema{invalid: true}
	}
	switch s := v.(type) {
	case *Schema:
		return s
	case Schema:
		return &s
	case PropType:
		return leafSchema(string(s))
	case string:
		return leafSchema(s)
	}
	if items, ok := toAnySlice(v); ok {
		return n.sequence(items, depth)
	}
	if m, ok := toStringMap(v); ok {
		if hasReservedKey(m) {
			return n.explicit(m, depth)
		}
		return n.implicitObject(m, depth)
	}
	return &Schema{invalid: true}
}

func leafSchema(tag string) *Schema {
	if !IsPropType(tag) {
		return &Schema{invalid: true}
	}
	return &Schema{DataType: PropType(tag)}
}

// sequence expands slice shorthand: one element is an array of that element's
// schema, several elements an array of a union over them. Nested slices
// recurse, supporting nested-array shorthand.
func (n *normalizer) sequence(items []any, depth int) *Schema {
	switch len(items) {
	case 0:
		return &Schema{invalid: true}
	case 1:
		return &Schema{DataType: TypeArray, Items: n.normalize(items[0], depth+1)}
	default:
		alts := make([]*Schema, 0, len(items))
		for _, it := range items {
			alts = append(alts, n.normalize(it, depth+1))
		}
		return &Schema{DataType: TypeArray, Items: &Schema{OneOf: alts}}
	}
}

// implicitObject turns a reserved-key-free map into an object schema: every
// key becomes a property and additionalProperties defaults to the negation of
// strict mode. Go maps carry no declaration order, so keys are sorted for
// deterministic error emission.
func (n *normalizer) implicitObject(m map[string]any, depth int) *Schema {
	props := make([]Property, 0, len(m))
	for _, k := range sortedKeys(m) {
		props = append(props, Property{Name: k, Schema: n.normalize(m[k], depth+1)})
	}
	ap := n.opt.Permissive
	return &Schema{DataType: TypeObject, Properties: props, AdditionalProperties: &ap}
}

// explicit decodes a map that names at least one reserved key. optional and
// allowedValues are preserved verbatim; oneOf alternatives, properties, and
// items are normalized recursively.
func (n *normalizer) explicit(m map[string]any, depth int) *Schema {
	out := &Schema{}
	if opt, ok := m[keyOptional]; ok {
		b, ok2 := opt.(bool)
		if !ok2 {
			return &Schema{invalid: true}
		}
		out.Optional = b
	}
	if av, ok := m[keyAllowedValues]; ok {
		vals, ok2 := toAnySlice(av)
		if !ok2 {
			return &Schema{invalid: true}
		}
		out.AllowedValues = vals
	}
	if alts, ok := m[keyOneOf]; ok {
		seq, ok2 := toAnySlice(alts)
		if !ok2 || len(seq) == 0 {
			return &Schema{invalid: true}
		}
		out.OneOf = make([]*Schema, 0, len(seq))
		for _, alt := range seq {
			out.OneOf = append(out.OneOf, n.normalize(alt, depth+1))
		}
		return out
	}
	if dt, ok := m[keyDataType]; ok {
		tag, ok2 := asTag(dt)
		if !ok2 || !IsPropType(tag) {
			return &Schema{invalid: true}
		}
		out.DataType = PropType(tag)
	}
	if ap, ok := m[keyAdditionalProperties]; ok {
		b, ok2 := ap.(bool)
		if !ok2 {
			return &Schema{invalid: true}
		}
		out.AdditionalProperties = &b
	}
	if props, ok := m[keyProperties]; ok {
		pm, ok2 := toStringMap(props)
		if !ok2 {
			return &Schema{invalid: true}
		}
		if out.DataType == "" {
			out.DataType = TypeObject
		}
		out.Properties = make([]Property, 0, len(pm))
		for _, k := range sortedKeys(pm) {
			out.Properties = append(out.Properties, Property{Name: k, Schema: n.normalize(pm[k], depth+1)})
		}
	}
	if it, ok := m[keyItems]; ok {
		if out.DataType == "" {
			out.DataType = TypeArray
		}
		out.Items = n.normalize(it, depth+1)
	}
	if out.DataType == "" {
		// Only optional/allowedValues without a type is not a schema.
		return &Schema{invalid: true}
	}
	return out
}

func hasReservedKey(m map[string]any) bool {
	for k := range m {
		if _, ok := reservedKeys[k]; ok {
			return true
		}
	}
	return false
}

func asTag(v any) (string, bool) {
	switch t := v.(type) {
	case PropType:
		return string(t), true
	case string:
		return t, true
	}
	return "", false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toAnySlice widens []any and typed slices/arrays into []any.
func toAnySlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// toStringMap widens map[string]any and typed string-keyed maps.
func toStringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
