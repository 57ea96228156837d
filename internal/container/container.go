package container

import "reflect"

// Absent marks a value that is not there at all: a missed key, an index
// past the end of an array. Distinct from nil, which is a present null.
var Absent = absent{}

type absent struct{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absent)
	return ok
}

// Array is a shared handle over a slice payload. Wrappers that refer to
// the same Array observe each other's Set/Push mutations even across
// append, which a bare Go slice header would not guarantee.
type Array struct {
	Items []any
}

// NewArray builds a handle over the given items without copying them.
func NewArray(items []any) *Array {
	return &Array{Items: items}
}

// Normalize rewrites a JSON-shaped value so that every slice is held
// behind an *Array handle. Already-normalized values are returned
// untouched: in particular an *Array keeps its identity, which is what
// preserves aliasing when a wrapped element is re-wrapped.
func Normalize(v any) any {
	switch t := v.(type) {
	case *Array:
		return t
	case []any:
		for i, item := range t {
			t[i] = Normalize(item)
		}
		return NewArray(t)
	case map[string]any:
		for k, item := range t {
			t[k] = Normalize(item)
		}
		return t
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = Normalize(rv.Index(i).Interface())
		}
		return NewArray(items)
	}

	return v
}

// Export returns a detached deep copy of v with every *Array handle
// unwrapped back to a plain []any. Mutating the result does not touch
// the shared containers it was copied from.
func Export(v any) any {
	switch t := v.(type) {
	case *Array:
		items := make([]any, len(t.Items))
		for i, item := range t.Items {
			items[i] = Export(item)
		}
		return items
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = Export(item)
		}
		return items
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[k] = Export(item)
		}
		return m
	}

	return v
}

// View unwraps the outermost *Array handle to its current items,
// leaving nested handles in place. The returned slice shares the
// handle's backing store.
func View(v any) any {
	if a, ok := v.(*Array); ok {
		return a.Items
	}

	return v
}
