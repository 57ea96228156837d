package flextype

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/Mxher07/flextype/internal/container"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

// ToStringValue wraps the canonical string rendering of the current
// value: strconv for scalars, JSON for containers, RFC 3339 for dates,
// "null" and "undefined" for the empty sentinels. The result runs
// fresh inference with no locks, so a rendering that reads as a number
// or boolean re-coerces right back; callers wanting the text itself
// should read it before wrapping or add a string lock.
func (v *Value) ToStringValue() *Value {
	name := fmt.Sprintf("String(%s)", v.name)
	return construct(name, stringify(v.converted), options.LockNone)
}

// ToNumberValue wraps the numeric reading of the current value:
// numbers convert, booleans become 1/0, null becomes 0, dates their
// Unix milliseconds; anything without a numeric reading becomes NaN
// (and re-infers as KindNaN).
func (v *Value) ToNumberValue() *Value {
	name := fmt.Sprintf("Number(%s)", v.name)
	return construct(name, toNumber(v.converted), options.LockNone)
}

// ToBooleanValue wraps the truthiness of the current value. Falsy:
// false, 0, NaN, the empty string, null and undefined. Containers are
// always truthy, empty or not.
func (v *Value) ToBooleanValue() *Value {
	name := fmt.Sprintf("Boolean(%s)", v.name)
	return construct(name, truthy(v.converted), options.LockNone)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	case *regexp.Regexp:
		return t.String()
	case *container.Array:
		return jsonify(container.Export(t))
	case map[string]any:
		return jsonify(container.Export(t))
	}

	if container.IsAbsent(v) {
		return "undefined"
	}

	return fmt.Sprint(v)
}

func jsonify(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(data)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case time.Time, *time.Time:
		// object-like, always truthy: a date at the Unix epoch must
		// not read as 0
		return true
	}

	if container.IsAbsent(v) {
		return false
	}
	if kind.Of(v) == kind.KindNaN {
		return false
	}

	n := toNumber(v)
	if !math.IsNaN(n) {
		return n != 0
	}

	return true
}
