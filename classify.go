package shapecheck

import (
	"encoding/json"
	"reflect"
)

// TypeOf maps a runtime value onto one of the seven PropType tags. Language
// natives that JSON would render as "object" are split into null, array, or
// object by checking null-ness and sequence-ness first.
func TypeOf(v any) PropType {
	switch v.(type) {
	case undefinedValue:
		return TypeUndefined
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return TypeNumber
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	}
	return typeOfReflect(v)
}

// typeOfReflect handles values outside the decoded-JSON fast path, e.g. typed
// slices ([]string) or maps produced by YAML decoding.
func typeOfReflect(v any) PropType {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map, reflect.Struct:
		return TypeObject
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return TypeNull
		}
		return TypeOf(rv.Elem().Interface())
	default:
		return TypeObject
	}
}
