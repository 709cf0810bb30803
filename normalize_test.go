package shapecheck_test

import (
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
)

func TestNormalize_BareTag(t *testing.T) {
	s := shapecheck.Normalize(shapecheck.TypeString)
	if !s.Valid() || s.DataType != shapecheck.TypeString {
		t.Fatalf("unexpected leaf: %+v", s)
	}
	if s.Optional || s.AllowedValues != nil || s.Items != nil || s.Properties != nil {
		t.Fatalf("bare tag must carry no other fields: %+v", s)
	}

	// A raw string tag works the same way.
	s2 := shapecheck.Normalize("number")
	if !s2.Valid() || s2.DataType != shapecheck.TypeNumber {
		t.Fatalf("unexpected leaf from string tag: %+v", s2)
	}
}

func TestNormalize_SequenceShorthand(t *testing.T) {
	// Single element: array of that element's schema.
	s := shapecheck.Normalize([]any{shapecheck.TypeString})
	if s.DataType != shapecheck.TypeArray || s.Items == nil {
		t.Fatalf("expected array schema: %+v", s)
	}
	if s.Items.DataType != shapecheck.TypeString {
		t.Fatalf("expected string items: %+v", s.Items)
	}

	// Multiple elements: array of a union over the elements, declared order.
	u := shapecheck.Normalize([]any{shapecheck.TypeString, shapecheck.TypeNumber})
	if u.DataType != shapecheck.TypeArray || u.Items == nil || len(u.Items.OneOf) != 2 {
		t.Fatalf("expected array of union: %+v", u)
	}
	if u.Items.OneOf[0].DataType != shapecheck.TypeString || u.Items.OneOf[1].DataType != shapecheck.TypeNumber {
		t.Fatalf("union alternatives out of order: %+v", u.Items)
	}

	// Nested sequences recurse.
	n := shapecheck.Normalize([]any{[]any{shapecheck.TypeBoolean}})
	if n.Items == nil || n.Items.DataType != shapecheck.TypeArray || n.Items.Items.DataType != shapecheck.TypeBoolean {
		t.Fatalf("nested array shorthand: %+v", n)
	}
}

func TestNormalize_ImplicitObject(t *testing.T) {
	s := shapecheck.Normalize(map[string]any{
		"name": shapecheck.TypeString,
		"tags": []any{shapecheck.TypeString},
	})
	if s.DataType != shapecheck.TypeObject || len(s.Properties) != 2 {
		t.Fatalf("expected object with 2 properties: %+v", s)
	}
	// Map shorthand emits properties in sorted key order.
	if s.Properties[0].Name != "name" || s.Properties[1].Name != "tags" {
		t.Fatalf("property order: %+v", s.Properties)
	}
	if s.Properties[1].Schema.DataType != shapecheck.TypeArray {
		t.Fatalf("sequence property not expanded: %+v", s.Properties[1].Schema)
	}
	// Strict default bakes in closed objects.
	if s.AdditionalProperties == nil || *s.AdditionalProperties {
		t.Fatalf("expected additionalProperties=false, got %+v", s.AdditionalProperties)
	}

	p := shapecheck.Normalize(map[string]any{"name": shapecheck.TypeString}, shapecheck.Opt{Permissive: true})
	if p.AdditionalProperties == nil || !*p.AdditionalProperties {
		t.Fatalf("permissive mode should open implicit objects: %+v", p.AdditionalProperties)
	}
}

func TestNormalize_ExplicitForms(t *testing.T) {
	u := shapecheck.Normalize(map[string]any{
		"optional": true,
		"oneOf":    []any{shapecheck.TypeString, shapecheck.TypeNumber},
	})
	if len(u.OneOf) != 2 || !u.Optional {
		t.Fatalf("explicit union: %+v", u)
	}

	o := shapecheck.Normalize(map[string]any{
		"dataType":             "object",
		"properties":           map[string]any{"id": shapecheck.TypeNumber},
		"additionalProperties": true,
	})
	if o.DataType != shapecheck.TypeObject || len(o.Properties) != 1 {
		t.Fatalf("explicit object: %+v", o)
	}
	if o.AdditionalProperties == nil || !*o.AdditionalProperties {
		t.Fatalf("explicit additionalProperties lost: %+v", o)
	}

	l := shapecheck.Normalize(map[string]any{
		"dataType":      "string",
		"optional":      true,
		"allowedValues": []any{"a", "b"},
	})
	if l.DataType != shapecheck.TypeString || !l.Optional || len(l.AllowedValues) != 2 {
		t.Fatalf("explicit leaf: %+v", l)
	}

	a := shapecheck.Normalize(map[string]any{"items": shapecheck.TypeString})
	if a.DataType != shapecheck.TypeArray || a.Items == nil || a.Items.DataType != shapecheck.TypeString {
		t.Fatalf("explicit array: %+v", a)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	surfaces := []any{
		shapecheck.TypeNumber,
		[]any{shapecheck.TypeString, shapecheck.TypeNull},
		map[string]any{"a": shapecheck.TypeString, "b": []any{shapecheck.TypeNumber}},
		map[string]any{"oneOf": []any{shapecheck.TypeString}, "optional": true},
	}
	for _, surface := range surfaces {
		once := shapecheck.Normalize(surface)
		twice := shapecheck.Normalize(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %#v", surface)
		}
	}
}

func TestNormalize_UnrecognizedShapes(t *testing.T) {
	for _, surface := range []any{42, true, "integer", []any{}, nil} {
		if s := shapecheck.Normalize(surface); s.Valid() {
			t.Fatalf("expected invalid schema for %#v, got %+v", surface, s)
		}
	}
}
