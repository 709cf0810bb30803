// Package jsonschema projects canonical shapecheck schemas into a minimal
// JSON Schema representation for interop with external tooling.
package jsonschema

import (
	shapecheck "github.com/shapecheck/shapecheck"
)

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type string `json:"type,omitempty"`
	Enum []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// FromSchema converts a canonical schema. Optionality maps onto the enclosing
// object's required list; JSON Schema has no undefined type, so undefined
// leaves project to an empty schema. Invalid nodes return nil.
func FromSchema(s *shapecheck.Schema) *Schema {
	if !s.Valid() {
		return nil
	}
	out := &Schema{}
	if len(s.OneOf) > 0 {
		out.OneOf = make([]*Schema, 0, len(s.OneOf))
		for _, alt := range s.OneOf {
			out.OneOf = append(out.OneOf, FromSchema(alt))
		}
		out.Enum = s.AllowedValues
		return out
	}
	if s.DataType != shapecheck.TypeUndefined {
		out.Type = string(s.DataType)
	}
	out.Enum = s.AllowedValues
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for _, p := range s.Properties {
			out.Properties[p.Name] = FromSchema(p.Schema)
			if p.Schema != nil && !p.Schema.Optional {
				out.Required = append(out.Required, p.Name)
			}
		}
		open := s.AdditionalProperties != nil && *s.AdditionalProperties
		out.AdditionalProperties = open
	}
	if s.Items != nil {
		out.Items = FromSchema(s.Items)
	}
	return out
}
