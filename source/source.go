// Package source decodes schema and data documents into the plain any trees
// the validator understands. JSON goes through goccy/go-json, YAML through
// yaml.v3 with mapping keys widened to strings.
package source

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSONBytes decodes a JSON document into any. Numbers decode as float64 (the
// fast mode); callers needing full precision should decode themselves and
// hand the tree to Validate directly.
func JSONBytes(b []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// JSONReader decodes a single JSON document from r.
func JSONReader(r io.Reader) (any, error) {
	var v any
	dec := gojson.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLBytes decodes a YAML document into any, normalizing mapping keys to
// strings so the result looks like decoded JSON.
func YAMLBytes(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return widenYAML(v)
}

// YAMLReader decodes a single YAML document from r.
func YAMLReader(r io.Reader) (any, error) {
	var v any
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return widenYAML(v)
}

// widenYAML rewrites yaml.v3's occasional map[any]any mappings into
// map[string]any, recursively. Non-string keys have no JSON counterpart and
// are rejected.
func widenYAML(v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, mv := range x {
			w, err := widenYAML(mv)
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, mv := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("source: non-string mapping key %v", k)
			}
			w, err := widenYAML(mv)
			if err != nil {
				return nil, err
			}
			out[ks] = w
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, ev := range x {
			w, err := widenYAML(ev)
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	default:
		return v, nil
	}
}
