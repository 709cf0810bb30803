package dsl

import (
	shapecheck "github.com/shapecheck/shapecheck"
)

// Builder yields a canonical schema. Every builder in this package implements
// it, and Field/Array/OneOf also accept raw surface forms, which are
// normalized with default options.
type Builder interface {
	Schema() *shapecheck.Schema
}

func toSchema(v any) *shapecheck.Schema {
	if b, ok := v.(Builder); ok {
		return b.Schema()
	}
	return shapecheck.Normalize(v)
}

// ---- leaves ----

type leafBuilder struct {
	s *shapecheck.Schema
}

// Type returns a leaf builder for an arbitrary type tag.
func Type(t shapecheck.PropType) *leafBuilder {
	return &leafBuilder{s: &shapecheck.Schema{DataType: t}}
}

// String returns a string leaf builder.
func String() *leafBuilder { return Type(shapecheck.TypeString) }

// Number returns a number leaf builder.
func Number() *leafBuilder { return Type(shapecheck.TypeNumber) }

// Bool returns a boolean leaf builder.
func Bool() *leafBuilder { return Type(shapecheck.TypeBoolean) }

// Null returns a null leaf builder.
func Null() *leafBuilder { return Type(shapecheck.TypeNull) }

// Optional marks the leaf optional.
func (b *leafBuilder) Optional() *leafBuilder {
	b.s.Optional = true
	return b
}

// Enum restricts the leaf to the given values.
func (b *leafBuilder) Enum(values ...any) *leafBuilder {
	b.s.AllowedValues = values
	return b
}

func (b *leafBuilder) Schema() *shapecheck.Schema { return b.s }

// ---- objects ----

type objectBuilder struct {
	s *shapecheck.Schema
}

// Object creates an object schema builder. Unknown keys are rejected unless
// Open is called, matching the validator's strict default.
func Object() *objectBuilder {
	return &objectBuilder{s: &shapecheck.Schema{
		DataType:   shapecheck.TypeObject,
		Properties: []shapecheck.Property{},
	}}
}

// Field appends a property; declaration order is error-emission order.
func (b *objectBuilder) Field(name string, schema any) *objectBuilder {
	b.s.Properties = append(b.s.Properties, shapecheck.Property{Name: name, Schema: toSchema(schema)})
	return b
}

// Open permits keys outside the declared property set.
func (b *objectBuilder) Open() *objectBuilder {
	t := true
	b.s.AdditionalProperties = &t
	return b
}

// Closed rejects keys outside the declared property set explicitly.
func (b *objectBuilder) Closed() *objectBuilder {
	f := false
	b.s.AdditionalProperties = &f
	return b
}

// Optional marks the whole object optional.
func (b *objectBuilder) Optional() *objectBuilder {
	b.s.Optional = true
	return b
}

func (b *objectBuilder) Schema() *shapecheck.Schema { return b.s }

// ---- arrays ----

type arrayBuilder struct {
	s *shapecheck.Schema
}

// Array creates an array schema builder with the given element schema.
func Array(elem any) *arrayBuilder {
	return &arrayBuilder{s: &shapecheck.Schema{
		DataType: shapecheck.TypeArray,
		Items:    toSchema(elem),
	}}
}

// Optional marks the array optional.
func (b *arrayBuilder) Optional() *arrayBuilder {
	b.s.Optional = true
	return b
}

func (b *arrayBuilder) Schema() *shapecheck.Schema { return b.s }

// ---- unions ----

type unionBuilder struct {
	s *shapecheck.Schema
}

// OneOf creates a union schema builder over the given alternatives, tried in
// declared order.
func OneOf(alts ...any) *unionBuilder {
	out := make([]*shapecheck.Schema, 0, len(alts))
	for _, alt := range alts {
		out = append(out, toSchema(alt))
	}
	return &unionBuilder{s: &shapecheck.Schema{OneOf: out}}
}

// Optional marks the union optional.
func (b *unionBuilder) Optional() *unionBuilder {
	b.s.Optional = true
	return b
}

// Enum restricts matching values to the given set. The union's own list wins;
// alternative-level allowedValues are not re-checked on a match.
func (b *unionBuilder) Enum(values ...any) *unionBuilder {
	b.s.AllowedValues = values
	return b
}

func (b *unionBuilder) Schema() *shapecheck.Schema { return b.s }
