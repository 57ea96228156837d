package coerce

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/Mxher07/flextype/internal/container"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

// Apply runs one coercion pass over a classified value and returns the
// converted value with its effective kind. The type lock is handled by
// the caller: Apply assumes coercion is wanted. A returned kind equal
// to the input kind means nothing type-changing happened.
func Apply(k kind.KindEnum, v any, locks options.LockEnum) (any, kind.KindEnum) {
	switch k {
	default:
		return v, k

	case kind.KindString:
		if locks.Has(options.LockString) {
			return v, k
		}
		converted, effective := coerceString(StringOf(v))
		if effective == kind.KindString {
			// keep the caller's representation, named string types included
			return v, k
		}
		return converted, effective

	case kind.KindBool:
		if locks.Has(options.LockBool) {
			// stored as a number, reported as a boolean: downstream
			// arithmetic clamps on this flag and the tag must survive
			if boolOf(v) {
				return float64(1), k
			}
			return float64(0), k
		}
		return v, k

	case kind.KindArray:
		// representation change only, the kind is untouched
		return container.Normalize(v), k

	case kind.KindObject:
		if m, ok := v.(map[string]any); ok {
			if m == nil {
				// a nil map reads like an empty object but rejects
				// writes; give the wrapper an addressable one
				return map[string]any{}, k
			}
			return container.Normalize(m), k
		}
		return v, k
	}
}

// StringOf reads a KindString-classified value, covering named string
// types that a direct type assertion would miss.
func StringOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return reflect.ValueOf(v).String()
}

func boolOf(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}

	return reflect.ValueOf(v).Bool()
}

func coerceString(s string) (any, kind.KindEnum) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s, kind.KindString
	}

	if strings.EqualFold(trimmed, "true") {
		return true, kind.KindBool
	}
	if strings.EqualFold(trimmed, "false") {
		return false, kind.KindBool
	}

	if n, ok := ParseFiniteNumber(trimmed); ok {
		return n, kind.KindNumber
	}

	if delimited(trimmed, '{', '}') {
		if parsed, ok := parseJSON(trimmed); ok {
			return parsed, kind.KindObject
		}
	}
	if delimited(trimmed, '[', ']') {
		if parsed, ok := parseJSON(trimmed); ok {
			return parsed, kind.KindArray
		}
	}

	// best effort: anything unparseable stays the original string
	return s, kind.KindString
}

// ParseFiniteNumber accepts only text that is entirely a finite number.
// strconv.ParseFloat also recognizes "Inf" and "NaN" spellings, which
// are not numbers for coercion purposes.
func ParseFiniteNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}

	return n, true
}

func parseJSON(s string) (any, bool) {
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, false
	}

	return container.Normalize(parsed), true
}

func delimited(s string, open, closing byte) bool {
	return len(s) >= 2 && s[0] == open && s[len(s)-1] == closing
}
