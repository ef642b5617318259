// Package validation guards the persistence layer from malformed identifiers and request bodies.
package validation

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Kind is the runtime JSON type of a decoded value. Integers and floats are distinct kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "bool", "int", "float", "string", "array", "object"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Schema maps each allowed field to the kinds its value may have.
type Schema map[string][]Kind

// Numeric accepts both integer and floating point values.
var Numeric = []Kind{KindInt, KindFloat}

// Validate reports whether body is an object that conforms to schema.
//
// Fields outside the schema always make the body invalid. In strict mode every
// schema field must be present; otherwise only the supplied fields are checked.
// Kinds are compared by identity, so "12" never satisfies a numeric field.
func Validate(body any, schema Schema, strict bool) bool {
	obj, ok := body.(map[string]any)
	if !ok {
		return false
	}

	for field, accepted := range schema {
		v, present := obj[field]
		if !present {
			if strict {
				return false
			}
			continue
		}
		if !accepts(accepted, v) {
			return false
		}
	}

	for field := range obj {
		if _, declared := schema[field]; !declared {
			return false
		}
	}

	return true
}

func accepts(accepted []Kind, v any) bool {
	kind, ok := KindOf(v)
	if !ok {
		return false
	}
	for _, k := range accepted {
		if k == kind {
			return true
		}
	}
	return false
}

// KindOf classifies a value produced by JSON decoding. Numbers decoded as
// json.Number are ints unless they carry a fraction or exponent.
func KindOf(v any) (Kind, bool) {
	switch val := v.(type) {
	case nil:
		return KindNull, true
	case bool:
		return KindBool, true
	case json.Number:
		if strings.ContainsAny(val.String(), ".eE") {
			return KindFloat, true
		}
		return KindInt, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt, true
	case float32, float64:
		return KindFloat, true
	case string:
		return KindString, true
	case []any:
		return KindArray, true
	case map[string]any:
		return KindObject, true
	default:
		return 0, false
	}
}
