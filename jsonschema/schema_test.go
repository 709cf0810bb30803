package jsonschema_test

import (
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
	g "github.com/shapecheck/shapecheck/dsl"
	js "github.com/shapecheck/shapecheck/jsonschema"
)

func TestFromSchema_Object(t *testing.T) {
	s := g.Object().
		Field("name", g.String()).
		Field("age", g.Number().Optional()).
		Schema()

	out := js.FromSchema(s)
	if out == nil || out.Type != "object" {
		t.Fatalf("unexpected projection: %+v", out)
	}
	if len(out.Properties) != 2 || out.Properties["name"].Type != "string" {
		t.Fatalf("properties lost: %+v", out.Properties)
	}
	if len(out.Required) != 1 || out.Required[0] != "name" {
		t.Fatalf("optional must not be required: %+v", out.Required)
	}
	if ap, ok := out.AdditionalProperties.(bool); !ok || ap {
		t.Fatalf("closed object should export additionalProperties=false: %+v", out.AdditionalProperties)
	}
}

func TestFromSchema_ArrayUnionEnum(t *testing.T) {
	s := shapecheck.Normalize([]any{shapecheck.TypeString, shapecheck.TypeNumber})
	out := js.FromSchema(s)
	if out.Type != "array" || out.Items == nil || len(out.Items.OneOf) != 2 {
		t.Fatalf("unexpected projection: %+v", out)
	}

	leaf := js.FromSchema(g.String().Enum("a", "b").Schema())
	if leaf.Type != "string" || len(leaf.Enum) != 2 {
		t.Fatalf("enum lost: %+v", leaf)
	}
}

func TestFromSchema_Invalid(t *testing.T) {
	if out := js.FromSchema(shapecheck.Normalize(42)); out != nil {
		t.Fatalf("invalid schemas do not project: %+v", out)
	}
}
