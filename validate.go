package shapecheck

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/shapecheck/shapecheck/i18n"
)

// Validate checks data against a surface or canonical schema and returns every
// mismatch in traversal order. It never panics; an empty result is the sole
// success signal. The schema is normalized on entry, so pre-normalizing is an
// optimization for callers, not a requirement.
func Validate(data any, schema any, opts ...Opt) Errors {
	return ValidateAt(data, schema, "", opts...)
}

// ValidateAt is Validate with an explicit base path prefixed to every reported
// location. External callers normally leave the path empty.
func ValidateAt(data any, schema any, path string, opts ...Opt) Errors {
	o := lastOpt(opts)
	w := walker{opt: o}
	return w.walk(data, Normalize(schema, o), path, 0)
}

// Valid reports whether data conforms to schema.
func Valid(data any, schema any, opts ...Opt) bool {
	return len(Validate(data, schema, opts...)) == 0
}

type walker struct {
	opt Opt
}

// walk applies the per-node check order: optional short-circuit, union
// dispatch, type check, value restriction, then the structural walk. A type
// mismatch stops this node's deeper checks; sibling properties and elements
// are never cut short.
func (w *walker) walk(data any, s *Schema, path string, depth int) Errors {
	if !s.Valid() {
		return Errors{invalidSchemaError(path)}
	}
	if depth > w.opt.MaxDepth {
		return Errors{maxDepthError(path, w.opt.MaxDepth)}
	}
	if s.Optional && TypeOf(data) == TypeUndefined {
		return nil
	}
	if len(s.OneOf) > 0 {
		return w.walkUnion(data, s, path, depth)
	}

	actual := TypeOf(data)
	if actual != s.DataType {
		return Errors{typeError(path, string(s.DataType), string(actual))}
	}

	var errs Errors
	if len(s.AllowedValues) > 0 && !valueAllowed(data, s.AllowedValues) {
		errs = append(errs, enumError(path, s.AllowedValues, data))
	}
	switch {
	case s.DataType == TypeObject && s.Properties != nil:
		errs = append(errs, w.walkObject(data, s, path, depth)...)
	case s.DataType == TypeArray && s.Items != nil:
		errs = append(errs, w.walkArray(data, s, path, depth)...)
	}
	return errs
}

// walkUnion tries alternatives in declared order against the same path; the
// first one producing zero errors wins. On a win the union's own allowedValues
// (and only those) still apply. When nothing matches, property-level errors
// from candidate alternatives are surfaced deduplicated; if every candidate
// failed at the union's own path the result collapses to one generic error.
func (w *walker) walkUnion(data any, s *Schema, path string, depth int) Errors {
	if TypeOf(data) == TypeUndefined {
		return Errors{unionError(path, len(s.OneOf), TypeUndefined)}
	}
	var combined Errors
	for _, alt := range s.OneOf {
		altErrs := w.walk(data, alt, path, depth+1)
		if len(altErrs) == 0 {
			if len(s.AllowedValues) > 0 && !valueAllowed(data, s.AllowedValues) {
				return Errors{enumError(path, s.AllowedValues, data)}
			}
			return nil
		}
		combined = append(combined, altErrs...)
	}
	var nested Errors
	seen := map[ValidationError]struct{}{}
	for _, e := range combined {
		if e.Path == path {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		nested = append(nested, e)
	}
	if len(nested) > 0 {
		return nested
	}
	return Errors{unionError(path, len(s.OneOf), TypeOf(data))}
}

// walkObject recurses into declared properties in declaration order, then
// scans for unexpected keys unless additionalProperties was explicitly true.
// Missing properties recurse with the Undefined sentinel so optional and type
// checks apply uniformly.
func (w *walker) walkObject(data any, s *Schema, path string, depth int) Errors {
	m, ok := toStringMap(data)
	if !ok {
		return Errors{typeError(path, string(TypeObject), string(TypeOf(data)))}
	}
	var errs Errors
	for _, p := range s.Properties {
		v, exists := m[p.Name]
		if !exists {
			v = Undefined
		}
		errs = append(errs, w.walk(v, p.Schema, joinKey(path, p.Name), depth+1)...)
	}
	if s.AdditionalProperties == nil || !*s.AdditionalProperties {
		var unknown []string
		for k := range m {
			if _, declared := s.property(k); !declared {
				unknown = append(unknown, k)
			}
		}
		// Go map iteration order is not stable; sort for deterministic output.
		sort.Strings(unknown)
		for _, k := range unknown {
			errs = append(errs, unknownKeyError(joinKey(path, k), k, TypeOf(m[k])))
		}
	}
	return errs
}

// walkArray recurses into every element in index order; a failing element does
// not stop its siblings.
func (w *walker) walkArray(data any, s *Schema, path string, depth int) Errors {
	items, ok := toAnySlice(data)
	if !ok {
		return Errors{typeError(path, string(TypeArray), string(TypeOf(data)))}
	}
	var errs Errors
	for i, item := range items {
		errs = append(errs, w.walk(item, s.Items, path+"["+strconv.Itoa(i)+"]", depth+1)...)
	}
	return errs
}

// ---- path helpers ----

func joinKey(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// ---- error constructors ----

func typeError(path, expected, received string) ValidationError {
	return ValidationError{
		Path:     path,
		Expected: expected,
		Received: received,
		Message:  i18n.T(CodeInvalidType, map[string]string{"expected": expected, "received": received}),
		Code:     CodeInvalidType,
	}
}

func enumError(path string, allowed []any, got any) ValidationError {
	return ValidationError{
		Path:     path,
		Expected: describeAllowed(allowed),
		Received: formatValue(got),
		Message:  i18n.T(CodeInvalidEnum, nil),
		Code:     CodeInvalidEnum,
	}
}

func unknownKeyError(path, key string, got PropType) ValidationError {
	return ValidationError{
		Path:     path,
		Expected: string(TypeUndefined),
		Received: string(got),
		Message:  i18n.T(CodeUnknownKey, map[string]string{"key": key}),
		Code:     CodeUnknownKey,
	}
}

func unionError(path string, n int, got PropType) ValidationError {
	return ValidationError{
		Path:     path,
		Expected: "one of " + strconv.Itoa(n) + " possible types",
		Received: string(got),
		Message:  i18n.T(CodeUnionMismatch, nil),
		Code:     CodeUnionMismatch,
	}
}

func invalidSchemaError(path string) ValidationError {
	return ValidationError{
		Path:     path,
		Expected: "a recognized schema shape",
		Received: "unrecognized schema",
		Message:  i18n.T(CodeInvalidSchema, nil),
		Code:     CodeInvalidSchema,
	}
}

func maxDepthError(path string, max int) ValidationError {
	return ValidationError{
		Path:     path,
		Expected: "nesting depth <= " + strconv.Itoa(max),
		Received: "deeper nesting",
		Message:  i18n.T(CodeMaxDepth, nil),
		Code:     CodeMaxDepth,
	}
}

// ---- value helpers ----

// valueAllowed checks membership with equality by value: numbers compare
// numerically across Go numeric kinds, everything else via DeepEqual.
func valueAllowed(v any, allowed []any) bool {
	for _, a := range allowed {
		if valuesEqual(v, a) {
			return true
		}
	}
	return false
}

func valuesEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok2 := toFloat(b)
		return ok2 && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}

func describeAllowed(allowed []any) string {
	b := &strings.Builder{}
	b.WriteString("one of [")
	for i, a := range allowed {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatValue(a))
	}
	b.WriteString("]")
	return b.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case undefinedValue:
		return string(TypeUndefined)
	case nil:
		return string(TypeNull)
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%v", v)
	}
}
