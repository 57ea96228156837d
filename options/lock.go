package options

import "strings"

type LockEnum int

const (
	LockString LockEnum = 1 << iota // keep strings verbatim: no boolean/number/JSON coercion
	LockBool                        // store booleans as 1/0 and clamp arithmetic into [0,1]
	LockType                        // freeze the raw value entirely: no coercion pass at all

	LockAll  = (1 << iota) - 1 // all locks combined
	LockNone = 0               // no locks selected
)

// Has reports whether every flag in l is set.
func (locks LockEnum) Has(l LockEnum) bool {
	return locks&l == l
}

// With returns locks with the given flags added.
func (locks LockEnum) With(l LockEnum) LockEnum {
	return locks | l
}

// Any reports whether at least one lock flag is set.
func (locks LockEnum) Any() bool {
	return locks&LockAll != 0
}

// String renders the set flags as "stringLock|boolLock|typeLock", or
// "none" when no flag is set.
func (locks LockEnum) String() string {
	var parts []string
	if locks.Has(LockString) {
		parts = append(parts, "stringLock")
	}
	if locks.Has(LockBool) {
		parts = append(parts, "boolLock")
	}
	if locks.Has(LockType) {
		parts = append(parts, "typeLock")
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// Combine folds a flag list into a single mask.
func Combine(flags ...LockEnum) LockEnum {
	res := LockEnum(LockNone)
	for _, f := range flags {
		res |= f
	}

	return res
}
