package flextype

import "errors"

var (
	// ErrInvalidArgument reports a malformed factory argument, such as
	// an empty variable name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLockViolation reports an arithmetic or string operation
	// attempted on a string-locked string.
	ErrLockViolation = errors.New("lock violation")

	// ErrTypeMismatch reports an operation invoked on a value whose
	// current kind does not satisfy the operation's required kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupportedOperator guards the internal operator dispatch.
	// It is not reachable through the public arithmetic methods.
	ErrUnsupportedOperator = errors.New("unsupported operator")
)
