package flextype

import (
	"fmt"
	"strings"

	"github.com/Mxher07/flextype/internal/coerce"
	"github.com/Mxher07/flextype/kind"
	"github.com/Mxher07/flextype/options"
)

// CharShift shifts every rune of the wrapped string by offset code
// points (offset may be negative) and wraps the result. No bounds
// clamping is applied: a shift past the valid Unicode range produces
// Go's replacement character U+FFFD for that rune, per the language's
// rune-to-string conversion rules.
//
// The result runs fresh inference, so a shifted string that now reads
// as "true", a number, or JSON re-coerces on the next pass. That is
// intentional.
func (v *Value) CharShift(offset int) (*Value, error) {
	if v.kind != kind.KindString {
		return nil, fmt.Errorf("%w: charShift expects a string, got %s", ErrTypeMismatch, v.kind.Tag())
	}
	if v.locks.Has(options.LockString) {
		return nil, fmt.Errorf("%w: %q is string-locked and cannot be shifted", ErrLockViolation, v.name)
	}

	var b strings.Builder
	for _, r := range coerce.StringOf(v.converted) {
		b.WriteRune(r + rune(offset))
	}

	name := fmt.Sprintf("charShift(%s, %d)", v.name, offset)
	return construct(name, b.String(), options.LockNone), nil
}
