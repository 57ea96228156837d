package kind_test

import (
	"fmt"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/Mxher07/flextype/internal/container"
	"github.com/Mxher07/flextype/kind"
)

func Example() {
	fmt.Println(kind.Of(nil))
	fmt.Println(kind.Of("hello"))
	fmt.Println(kind.Of(42))
	fmt.Println(kind.Of(true))
	fmt.Println(kind.Of([]any{1, 2}))
	fmt.Println(kind.Of(map[string]any{"a": 1}))
	fmt.Println(kind.Of(time.Now()))
	fmt.Println(kind.Of(struct{}{}))
	// Output:
	// KindNull
	// KindString
	// KindNumber
	// KindBool
	// KindArray
	// KindObject
	// KindDate
	// KindObject
}

func TestOf(t *testing.T) {
	type IntAlias int
	var nilPtr *int

	tests := []struct {
		name     string
		value    any
		expected kind.KindEnum
	}{
		{"nil", nil, kind.KindNull},
		{"nil pointer", nilPtr, kind.KindNull},
		{"absent sentinel", container.Absent, kind.KindUndefined},
		{"nan float64", math.NaN(), kind.KindNaN},
		{"nan float32", float32(math.NaN()), kind.KindNaN},
		{"string", "x", kind.KindString},
		{"empty string", "", kind.KindString},
		{"bool", false, kind.KindBool},
		{"int", 7, kind.KindNumber},
		{"int alias", IntAlias(7), kind.KindNumber},
		{"uint", uint8(7), kind.KindNumber},
		{"float", 7.5, kind.KindNumber},
		{"slice", []int{1}, kind.KindArray},
		{"array handle", container.NewArray([]any{1}), kind.KindArray},
		{"fixed array", [2]int{1, 2}, kind.KindArray},
		{"plain object", map[string]any{}, kind.KindObject},
		{"typed map", map[int]string{}, kind.KindMap},
		{"set", map[string]struct{}{"a": {}}, kind.KindSet},
		{"date", time.Unix(0, 0), kind.KindDate},
		{"regexp", regexp.MustCompile(`\d+`), kind.KindRegexp},
		{"struct", struct{ A int }{1}, kind.KindObject},
		{"pointer to struct", &struct{ A int }{1}, kind.KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := kind.Of(tt.value)
			if result != tt.expected {
				t.Errorf("Of(%v) = %s, want %s", tt.value, result, tt.expected)
			}
		})
	}
}
