package source_test

import (
	"strings"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/source"
)

func TestJSONBytes(t *testing.T) {
	v, err := source.JSONBytes([]byte(`{"name":"x","scores":[1,2.5],"ok":true,"none":null}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", v)
	}
	if shapecheck.TypeOf(m["scores"]) != shapecheck.TypeArray {
		t.Fatalf("scores: %T", m["scores"])
	}
	if _, isFloat := m["scores"].([]any)[0].(float64); !isFloat {
		t.Fatalf("numbers decode as float64, got %T", m["scores"].([]any)[0])
	}
}

func TestJSONBytes_Invalid(t *testing.T) {
	if _, err := source.JSONBytes([]byte(`{"broken`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestJSONReader(t *testing.T) {
	v, err := source.JSONReader(strings.NewReader(`[1,2,3]`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if shapecheck.TypeOf(v) != shapecheck.TypeArray {
		t.Fatalf("expected array, got %T", v)
	}
}

func TestYAMLBytes(t *testing.T) {
	v, err := source.YAMLBytes([]byte("name: x\ntags:\n  - a\n  - b\ncount: 3\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", v)
	}
	if shapecheck.TypeOf(m["count"]) != shapecheck.TypeNumber {
		t.Fatalf("count should classify as number, got %T", m["count"])
	}

	// A YAML document can describe a schema directly.
	schema, err := source.YAMLBytes([]byte("name: string\ncount: number\ntags:\n  - string\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if errs := shapecheck.Validate(m, schema); len(errs) != 0 {
		t.Fatalf("expected YAML data to match YAML schema, got: %v", errs)
	}
}

func TestYAMLReader(t *testing.T) {
	v, err := source.YAMLReader(strings.NewReader("a: 1"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if shapecheck.TypeOf(v) != shapecheck.TypeObject {
		t.Fatalf("expected object, got %T", v)
	}
}
