package coerce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mxher07/flextype/internal/coerce"
	"github.com/Mxher07/flextype/internal/container"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

func TestStringCoercion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
		kind     kind.KindEnum
	}{
		{"true lowercase", "true", true, kind.KindBool},
		{"false uppercase", "FALSE", false, kind.KindBool},
		{"true padded", "  True  ", true, kind.KindBool},
		{"integer text", "42", float64(42), kind.KindNumber},
		{"float text", "-3.25", float64(-3.25), kind.KindNumber},
		{"scientific text", "1e3", float64(1000), kind.KindNumber},
		{"padded number", " 7 ", float64(7), kind.KindNumber},
		{"plain text", "hello", "hello", kind.KindString},
		{"empty", "", "", kind.KindString},
		{"whitespace only", "   ", "   ", kind.KindString},
		{"inf text stays string", "Inf", "Inf", kind.KindString},
		{"nan text stays string", "NaN", "NaN", kind.KindString},
		{"truthy word stays string", "yes", "yes", kind.KindString},
		{"malformed json", "{not json}", "{not json}", kind.KindString},
		{"mismatched brackets", "[1, 2}", "[1, 2}", kind.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, k := coerce.Apply(kind.KindString, tt.input, options.LockNone)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.kind, k)
		})
	}
}

func TestStringToJSON(t *testing.T) {
	got, k := coerce.Apply(kind.KindString, `{"a": 1, "b": [true]}`, options.LockNone)
	require.Equal(t, kind.KindObject, k)

	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), m["a"])

	b, ok := m["b"].(*container.Array)
	require.True(t, ok, "nested JSON arrays must be normalized to shared handles")
	assert.Equal(t, []any{true}, b.Items)

	got, k = coerce.Apply(kind.KindString, "[1, 2]", options.LockNone)
	require.Equal(t, kind.KindArray, k)
	a, ok := got.(*container.Array)
	require.True(t, ok)
	assert.Equal(t, []any{float64(1), float64(2)}, a.Items)
}

func TestStringLockSuppressesCoercion(t *testing.T) {
	for _, input := range []string{"true", "42", `{"a":1}`, "[1]"} {
		got, k := coerce.Apply(kind.KindString, input, options.LockString)
		assert.Equal(t, input, got)
		assert.Equal(t, kind.KindString, k)
	}
}

func TestBoolLockStoresNumbers(t *testing.T) {
	got, k := coerce.Apply(kind.KindBool, true, options.LockBool)
	assert.Equal(t, float64(1), got)
	assert.Equal(t, kind.KindBool, k, "the tag must stay boolean even though the payload is numeric")

	got, k = coerce.Apply(kind.KindBool, false, options.LockBool)
	assert.Equal(t, float64(0), got)
	assert.Equal(t, kind.KindBool, k)

	got, k = coerce.Apply(kind.KindBool, true, options.LockNone)
	assert.Equal(t, true, got)
	assert.Equal(t, kind.KindBool, k)
}

func TestOtherKindsPassThrough(t *testing.T) {
	got, k := coerce.Apply(kind.KindNumber, 5, options.LockNone)
	assert.Equal(t, 5, got)
	assert.Equal(t, kind.KindNumber, k)

	got, k = coerce.Apply(kind.KindNull, nil, options.LockNone)
	assert.Nil(t, got)
	assert.Equal(t, kind.KindNull, k)
}

func TestNilMapBecomesAddressable(t *testing.T) {
	got, k := coerce.Apply(kind.KindObject, map[string]any(nil), options.LockNone)
	require.Equal(t, kind.KindObject, k)

	m, ok := got.(map[string]any)
	require.True(t, ok)
	require.NotNil(t, m, "a nil map must be replaced so writes cannot panic")
	assert.Empty(t, m)
}

func TestArrayNormalization(t *testing.T) {
	got, k := coerce.Apply(kind.KindArray, []int{1, 2}, options.LockNone)
	require.Equal(t, kind.KindArray, k)

	a, ok := got.(*container.Array)
	require.True(t, ok)
	assert.Equal(t, []any{1, 2}, a.Items)

	// a handle passes through untouched
	same, _ := coerce.Apply(kind.KindArray, a, options.LockNone)
	assert.Same(t, a, same)
}
