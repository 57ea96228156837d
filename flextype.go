// Package flextype wraps loosely-typed input values, infers a runtime
// kind for them, and opportunistically coerces stringly-typed data
// (numbers, booleans, JSON) into richer native representations. Lock
// flags opt out of coercion selectively, and every wrapper records the
// sequence of kinds its value has passed through.
//
// Wrappers are immutable snapshots: operations that transform a value
// return a fresh *Value. The deliberate exception is the collection
// surface (Set, Push), which mutates the wrapped container in place.
// Two wrappers produced from the same array or object alias one shared
// backing store, and mutations through one are visible through the
// other.
package flextype

import (
	"fmt"

	"github.com/Mxher07/flextype/internal/coerce"
	"github.com/Mxher07/flextype/internal/container"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

// DefaultName labels wrappers constructed without a caller-supplied name.
const DefaultName = "unknown"

// Undefined is the sentinel a Get miss wraps: a missing object key or
// an index past the end of an array. It classifies as KindUndefined.
var Undefined any = container.Absent

// Value wraps one raw input value together with its lock flags, its
// inferred kind, the coerced form of the value, and the kind history.
// Inference and coercion run once, at construction; all reads consume
// the cached result.
type Value struct {
	initial   any
	name      string
	locks     options.LockEnum
	converted any
	kind      kind.KindEnum
	history   []kind.KindEnum
}

// New wraps value under the given display name. Lock flags are OR-combined;
// none means full coercion. The name must be non-empty.
func New(name string, value any, locks ...options.LockEnum) (*Value, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: variable name must be a non-empty string", ErrInvalidArgument)
	}

	return construct(name, value, options.Combine(locks...)), nil
}

// Wrap is New with the default display name.
func Wrap(value any, locks ...options.LockEnum) *Value {
	return construct(DefaultName, value, options.Combine(locks...))
}

// NewBatch wraps every entry of variables under its key, applying the
// same lock flags to all. The result's key set matches the input's
// exactly. The first invalid name fails the whole batch.
func NewBatch(variables map[string]any, locks ...options.LockEnum) (map[string]*Value, error) {
	res := make(map[string]*Value, len(variables))
	for name, value := range variables {
		v, err := New(name, value, locks...)
		if err != nil {
			return nil, err
		}
		res[name] = v
	}

	return res, nil
}

// construct is the single build path: every factory, lock toggle and
// derived-value operation funnels through it.
func construct(name string, value any, locks options.LockEnum) *Value {
	v := &Value{
		initial: value,
		name:    name,
		locks:   locks,
	}

	raw := kind.Of(value)
	if locks.Has(options.LockType) {
		// frozen verbatim: no coercion pass, single-entry history
		v.converted = value
		v.kind = raw
		v.history = []kind.KindEnum{raw}
		return v
	}

	converted, effective := coerce.Apply(raw, value, locks)
	v.converted = converted
	v.kind = effective
	v.history = []kind.KindEnum{raw}
	if effective != raw {
		v.history = append(v.history, effective)
	}

	return v
}

// Name returns the display label.
func (v *Value) Name() string { return v.name }

// Type returns the current effective kind, after coercion.
func (v *Value) Type() kind.KindEnum { return v.kind }

// Value returns the converted value. Array payloads are unwrapped to
// their current []any view; the slice shares the wrapper's backing
// store, so element writes through it are visible to every alias.
func (v *Value) Value() any { return container.View(v.converted) }

// Initial returns the raw value captured at construction, never mutated.
func (v *Value) Initial() any { return v.initial }

// Export returns a detached deep copy of the converted value. Unlike
// Value, mutating the result cannot affect this wrapper or its aliases.
func (v *Value) Export() any { return container.Export(v.converted) }

// TypeHistory returns a copy of every distinct kind the value has held,
// oldest first. The last entry always equals Type.
func (v *Value) TypeHistory() []kind.KindEnum {
	history := make([]kind.KindEnum, len(v.history))
	copy(history, v.history)
	return history
}

// Locks returns the lock flags the wrapper was built with.
func (v *Value) Locks() options.LockEnum { return v.locks }

// IsLocked reports whether any lock flag is set.
func (v *Value) IsLocked() bool { return v.locks.Any() }

func (v *Value) IsString() bool    { return v.kind == kind.KindString }
func (v *Value) IsNumber() bool    { return v.kind == kind.KindNumber }
func (v *Value) IsBool() bool      { return v.kind == kind.KindBool }
func (v *Value) IsArray() bool     { return v.kind == kind.KindArray }
func (v *Value) IsObject() bool    { return v.kind == kind.KindObject }
func (v *Value) IsNull() bool      { return v.kind == kind.KindNull }
func (v *Value) IsUndefined() bool { return v.kind == kind.KindUndefined }
