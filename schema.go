package shapecheck

// Schema is the canonical schema form consumed by the validation engine.
// Every node carries exactly one of DataType or OneOf; Normalize upholds this
// for all recognized surface shapes and marks everything else invalid.
type Schema struct {
	// DataType tags leaf, object, and array nodes.
	DataType PropType
	// OneOf holds union alternatives, tried in declared order.
	OneOf []*Schema

	// Properties lists object properties in declaration order. A non-nil
	// (possibly empty) slice makes the engine run the object structural check.
	Properties []Property
	// AdditionalProperties controls unknown keys. nil means "not explicitly
	// set": the engine treats that as closed, and Normalize bakes in the
	// per-call default for implicit object schemas.
	AdditionalProperties *bool

	// Items is the single element schema of an array node.
	Items *Schema

	// Optional accepts the undefined value outright, for any variant.
	Optional bool
	// AllowedValues restricts otherwise-valid values to a closed set.
	AllowedValues []any

	// invalid marks surface shapes Normalize did not recognize. The engine
	// reports these as invalid_schema errors rather than silently passing.
	invalid bool
}

// Property is one named object property. Declaration order is error-emission
// order.
type Property struct {
	Name   string
	Schema *Schema
}

// property returns the schema declared for name, if any.
func (s *Schema) property(name string) (*Schema, bool) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return s.Properties[i].Schema, true
		}
	}
	return nil, false
}

// Valid reports whether the node came out of normalization as a recognized
// shape. Validating against an invalid node yields an invalid_schema error.
func (s *Schema) Valid() bool {
	return s != nil && !s.invalid
}
