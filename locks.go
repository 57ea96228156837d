package flextype

import "github.com/Mxher07/flextype/options"

// Lock toggles never mutate the receiver. Each one rebuilds a fresh
// wrapper from the original raw value with the extra flag OR-ed in, so
// inference and coercion rerun from scratch and the kind history is
// reseeded rather than inherited.

// WithStringLock returns a rebuilt wrapper whose string payload is kept
// verbatim: no boolean, number or JSON coercion.
func (v *Value) WithStringLock() *Value {
	return construct(v.name, v.initial, v.locks.With(options.LockString))
}

// WithBoolLock returns a rebuilt wrapper that stores booleans as 1/0
// and clamps arithmetic results into [0,1].
func (v *Value) WithBoolLock() *Value {
	return construct(v.name, v.initial, v.locks.With(options.LockBool))
}

// WithTypeLock returns a rebuilt wrapper whose raw value is frozen
// entirely: no coercion pass runs at all.
func (v *Value) WithTypeLock() *Value {
	return construct(v.name, v.initial, v.locks.With(options.LockType))
}

// Unlock returns a rebuilt wrapper with every lock flag cleared.
func (v *Value) Unlock() *Value {
	return construct(v.name, v.initial, options.LockNone)
}
