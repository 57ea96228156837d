package flextype

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/Mxher07/flextype/internal/coerce"
	"github.com/Mxher07/flextype/internal/num"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

// Add returns a fresh wrapper around v + other.
func (v *Value) Add(other any) (*Value, error) { return v.arithmetic("+", other) }

// Subtract returns a fresh wrapper around v - other.
func (v *Value) Subtract(other any) (*Value, error) { return v.arithmetic("-", other) }

// Multiply returns a fresh wrapper around v * other.
func (v *Value) Multiply(other any) (*Value, error) { return v.arithmetic("*", other) }

// Divide returns a fresh wrapper around v / other. Division by zero
// follows IEEE-754 float64 arithmetic and yields ±Inf or NaN instead
// of failing; a NaN result re-infers as KindNaN.
func (v *Value) Divide(other any) (*Value, error) { return v.arithmetic("/", other) }

// operand pairs a resolved numeric payload with the display name it
// contributes to the synthesized result name. Raw (unwrapped) values
// are shown as "literal".
type operand struct {
	value any
	name  string
}

func resolveOperand(other any) operand {
	if o, ok := other.(*Value); ok {
		return operand{value: o.converted, name: o.name}
	}

	return operand{value: other, name: "literal"}
}

func (v *Value) arithmetic(op string, other any) (*Value, error) {
	if v.locks.Has(options.LockString) && v.kind == kind.KindString {
		return nil, fmt.Errorf("%w: %q is string-locked and cannot be a numeric operand", ErrLockViolation, v.name)
	}

	right := resolveOperand(other)

	res, err := applyOp(op, toNumber(v.converted), toNumber(right.value))
	if err != nil {
		return nil, err
	}

	if v.locks.Has(options.LockBool) && v.kind == kind.KindBool {
		res = num.Clamp(0, res, 1)
	}

	name := fmt.Sprintf("(%s %s %s)", v.name, op, right.name)
	return construct(name, res, options.LockNone), nil
}

// applyOp is the operator dispatch table. The four public methods pass
// fixed tokens, so the failure branch guards only internal misuse.
func applyOp(op string, left, right float64) (float64, error) {
	switch op {
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, op)
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		return left / right, nil
	}
}

// toNumber resolves a value to float64. Numbers convert directly,
// booleans to 1/0, null to 0, dates to Unix milliseconds, strings
// through a full finite parse; everything without a numeric reading
// (unparseable strings, absent values, containers, regexps) resolves
// to NaN.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case float64:
		return t
	case string:
		n, ok := coerce.ParseFiniteNumber(strings.TrimSpace(t))
		if !ok {
			return math.NaN()
		}
		return n
	case time.Time:
		return float64(t.UnixMilli())
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	default:
		return math.NaN()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
}
