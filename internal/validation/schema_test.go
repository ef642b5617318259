package validation

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	"dollar_value":   Numeric,
	"euro_value":     Numeric,
	"bitcoin_price":  Numeric,
	"bitcoin_volume": Numeric,
}

func decode(t *testing.T, raw string) any {
	t.Helper()
	body, err := DecodeBody(strings.NewReader(raw))
	require.NoError(t, err)
	return body
}

func TestValidate_StrictComplete(t *testing.T) {
	body := decode(t, `{"dollar_value":100,"euro_value":92.5,"bitcoin_price":64000,"bitcoin_volume":0.0015}`)
	assert.True(t, Validate(body, testSchema, true))
	assert.True(t, Validate(body, testSchema, false))
}

func TestValidate_StrictMissingField(t *testing.T) {
	for field := range testSchema {
		t.Run(field, func(t *testing.T) {
			obj := map[string]any{}
			for f := range testSchema {
				if f != field {
					obj[f] = json.Number("1")
				}
			}
			assert.False(t, Validate(obj, testSchema, true))
			assert.True(t, Validate(obj, testSchema, false))
		})
	}
}

func TestValidate_UnknownFieldAlwaysInvalid(t *testing.T) {
	tests := []string{
		`{"unknown":1}`,
		`{"dollar_value":1,"unknown":1}`,
		`{"dollar_value":1,"euro_value":1,"bitcoin_price":1,"bitcoin_volume":1,"_id":"x"}`,
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			body := decode(t, raw)
			assert.False(t, Validate(body, testSchema, false))
			assert.False(t, Validate(body, testSchema, true))
		})
	}
}

func TestValidate_EmptyLenientBody(t *testing.T) {
	assert.True(t, Validate(map[string]any{}, testSchema, false))
	assert.False(t, Validate(map[string]any{}, testSchema, true))
}

func TestValidate_NonObjectBodies(t *testing.T) {
	tests := map[string]string{
		"array":  `[{"dollar_value":1}]`,
		"number": `12`,
		"string": `"dollar_value"`,
		"null":   `null`,
		"bool":   `true`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			body := decode(t, raw)
			assert.False(t, Validate(body, testSchema, false))
			assert.False(t, Validate(body, testSchema, true))
		})
	}
}

func TestValidate_KindIdentity(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "int", raw: `{"dollar_value":10}`, valid: true},
		{name: "float", raw: `{"dollar_value":10.5}`, valid: true},
		{name: "exponent", raw: `{"dollar_value":1e3}`, valid: true},
		{name: "numeric string", raw: `{"dollar_value":"10"}`, valid: false},
		{name: "bool", raw: `{"dollar_value":true}`, valid: false},
		{name: "null", raw: `{"dollar_value":null}`, valid: false},
		{name: "object", raw: `{"dollar_value":{"v":1}}`, valid: false},
		{name: "array", raw: `{"dollar_value":[1]}`, valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Validate(decode(t, tt.raw), testSchema, false))
		})
	}
}

func TestValidate_IntOnlyField(t *testing.T) {
	schema := Schema{"count": {KindInt}}

	assert.True(t, Validate(decode(t, `{"count":3}`), schema, true))
	assert.False(t, Validate(decode(t, `{"count":3.0}`), schema, true))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		value any
		kind  Kind
		ok    bool
	}{
		{nil, KindNull, true},
		{true, KindBool, true},
		{json.Number("42"), KindInt, true},
		{json.Number("-42"), KindInt, true},
		{json.Number("4.2"), KindFloat, true},
		{json.Number("4E2"), KindFloat, true},
		{7, KindInt, true},
		{int64(7), KindInt, true},
		{7.5, KindFloat, true},
		{"7", KindString, true},
		{[]any{}, KindArray, true},
		{map[string]any{}, KindObject, true},
		{struct{}{}, 0, false},
	}
	for _, tt := range tests {
		kind, ok := KindOf(tt.value)
		assert.Equal(t, tt.ok, ok, "%#v", tt.value)
		if tt.ok {
			assert.Equal(t, tt.kind, kind, "%#v", tt.value)
		}
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
