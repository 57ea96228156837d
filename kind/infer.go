package kind

import (
	"math"
	"reflect"
	"regexp"
	"time"

	"github.com/Mxher07/flextype/internal/container"
)

// Of classifies a raw value into exactly one kind. Precedence: null,
// then the absent sentinel, then NaN, then container shapes, then the
// primitive kinds. Unrecognized composites fall back to KindObject.
func Of(v any) KindEnum {
	if v == nil {
		return KindNull
	}

	if container.IsAbsent(v) {
		return KindUndefined
	}

	// check well-known concrete types first
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) {
			return KindNaN
		}
		return KindNumber
	case float32:
		if math.IsNaN(float64(t)) {
			return KindNaN
		}
		return KindNumber
	case *container.Array:
		return KindArray
	case time.Time:
		return KindDate
	case *time.Time:
		return KindDate
	case *regexp.Regexp:
		return KindRegexp
	case map[string]any:
		return KindObject
	case string:
		return KindString
	case bool:
		return KindBool
	}

	switch rt := reflect.TypeOf(v); rt.Kind() {
	default:
		return KindObject
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		// map[T]struct{} is the conventional Go spelling of a set
		if rt.Elem() == reflect.TypeOf(struct{}{}) {
			return KindSet
		}
		return KindMap
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindNumber
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(reflect.ValueOf(v).Float()) {
			return KindNaN
		}
		return KindNumber
	case reflect.Ptr:
		if reflect.ValueOf(v).IsNil() {
			return KindNull
		}
		return KindObject
	}
}
