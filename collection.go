package flextype

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/Mxher07/flextype/internal/container"
	"github.com/Mxher07/flextype/internal/num"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

// Get wraps the element at property, which is an index for arrays and
// a key for objects. A miss (index out of range, unknown key) wraps
// Undefined rather than failing. Only map-backed objects are
// addressable: structs classify as objects but every lookup on them
// reads as Undefined. The child is named "<name>.<property>" and runs
// fresh inference; nested containers keep their shared handle, so a
// child wrapper aliases the parent's backing store.
func (v *Value) Get(property any) (*Value, error) {
	var elem any

	switch v.kind {
	default:
		return nil, fmt.Errorf("%w: get expects an array or object, got %s", ErrTypeMismatch, v.kind.Tag())
	case kind.KindArray:
		elem = v.arrayElem(property)
	case kind.KindObject:
		elem = v.objectElem(property)
	}

	name := fmt.Sprintf("%s.%v", v.name, property)
	return construct(name, elem, options.LockNone), nil
}

// Set stores value at property in the wrapped container, in place, and
// returns the same instance for chaining: this is the one deliberate
// mutator, not a snapshot. The write is visible through every wrapper
// aliasing the container. A *Value argument is unwrapped first. Array
// indexes past the end grow the array, filling the gap with Undefined;
// a negative index fails. As with Get, only map-backed objects are
// addressable; writing to a struct-backed object fails.
func (v *Value) Set(property, value any) (*Value, error) {
	value = unwrap(value)

	switch v.kind {
	default:
		return nil, fmt.Errorf("%w: set expects an array or object, got %s", ErrTypeMismatch, v.kind.Tag())

	case kind.KindObject:
		m, ok := v.converted.(map[string]any)
		if !ok || m == nil {
			return nil, fmt.Errorf("%w: %q does not wrap an addressable object", ErrTypeMismatch, v.name)
		}
		m[fmt.Sprint(property)] = value
		return v, nil

	case kind.KindArray:
		idx, ok := arrayIndex(property)
		if !ok || idx < 0 {
			return nil, fmt.Errorf("%w: %v is not a valid array index", ErrInvalidArgument, property)
		}

		a, ok := v.converted.(*container.Array)
		if !ok {
			return v.setVerbatim(idx, value)
		}

		for len(a.Items) <= idx {
			a.Items = append(a.Items, container.Absent)
		}
		a.Items[idx] = value
		return v, nil
	}
}

// Push appends items to the wrapped array in place, preserving order,
// and returns the same instance. *Value items are unwrapped first.
func (v *Value) Push(items ...any) (*Value, error) {
	if v.kind != kind.KindArray {
		return nil, fmt.Errorf("%w: push expects an array, got %s", ErrTypeMismatch, v.kind.Tag())
	}

	a, ok := v.converted.(*container.Array)
	if !ok {
		return v.pushVerbatim(items)
	}

	for _, item := range items {
		a.Items = append(a.Items, unwrap(item))
	}

	return v, nil
}

func (v *Value) arrayElem(property any) any {
	idx, ok := arrayIndex(property)
	if !ok {
		return container.Absent
	}

	if a, isHandle := v.converted.(*container.Array); isHandle {
		if !num.IsInRange(0, idx, len(a.Items)-1) {
			return container.Absent
		}
		return a.Items[idx]
	}

	// verbatim (type-locked) slice: read through reflection
	rv := reflect.ValueOf(v.converted)
	if !num.IsInRange(0, idx, rv.Len()-1) {
		return container.Absent
	}

	return rv.Index(idx).Interface()
}

func (v *Value) objectElem(property any) any {
	m, ok := v.converted.(map[string]any)
	if !ok {
		return container.Absent
	}

	elem, ok := m[fmt.Sprint(property)]
	if !ok {
		return container.Absent
	}

	return elem
}

// setVerbatim writes into a type-locked slice kept in its original Go
// representation. In-range writes land in the shared backing array;
// growth past the end is only visible through this instance, because a
// bare Go slice header cannot be extended for its aliases.
func (v *Value) setVerbatim(idx int, value any) (*Value, error) {
	rv := reflect.ValueOf(v.converted)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %q does not wrap an addressable array", ErrTypeMismatch, v.name)
	}

	elemType := rv.Type().Elem()
	ev, ok := conform(value, elemType)
	if !ok {
		return nil, fmt.Errorf("%w: cannot store %s in an array of %s",
			ErrTypeMismatch, kind.Of(value).Tag(), elemType)
	}

	for rv.Len() <= idx {
		rv = reflect.Append(rv, reflect.Zero(elemType))
	}
	rv.Index(idx).Set(ev)
	v.converted = rv.Interface()

	return v, nil
}

// pushVerbatim appends to a type-locked slice. The replacement header
// is stored locally; aliases of the original slice do not observe it.
func (v *Value) pushVerbatim(items []any) (*Value, error) {
	rv := reflect.ValueOf(v.converted)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %q does not wrap an appendable array", ErrTypeMismatch, v.name)
	}

	elemType := rv.Type().Elem()
	for _, item := range items {
		ev, ok := conform(unwrap(item), elemType)
		if !ok {
			return nil, fmt.Errorf("%w: cannot append %s to an array of %s",
				ErrTypeMismatch, kind.Of(item).Tag(), elemType)
		}
		rv = reflect.Append(rv, ev)
	}
	v.converted = rv.Interface()

	return v, nil
}

// unwrap resolves a possibly-wrapped argument to its converted value.
func unwrap(value any) any {
	if o, ok := value.(*Value); ok {
		return o.converted
	}

	return value
}

// arrayIndex resolves a property to an array index, accepting integers
// and numeric strings the way dynamic property access would.
func arrayIndex(property any) (int, bool) {
	switch t := property.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	case string:
		idx, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return idx, true
	default:
		return 0, false
	}
}

func conform(value any, elemType reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch elemType.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map:
			return reflect.Zero(elemType), true
		default:
			return reflect.Value{}, false
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(elemType) {
		if rv.Type().ConvertibleTo(elemType) && kind.Of(value) == kind.KindNumber && isNumeric(elemType.Kind()) {
			return rv.Convert(elemType), true
		}
		return reflect.Value{}, false
	}

	return rv, true
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}
