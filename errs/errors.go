package errs

import (
	"errors"
	"fmt"
)

// ErrNoAddress is returned by signer backends that cannot derive their
// own address and were not given one out-of-band.
var ErrNoAddress = errors.New("address not available")

// ValidationError marks malformed or out-of-range caller input. The
// caller has to fix the input, retrying the same call will never succeed.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SignerError marks a failure inside a signing backend. These may be
// transient (remote service unreachable) and the caller decides whether
// to retry.
type SignerError struct {
	Backend string
	Err     error
}

func NewSignerError(backend string, err error) *SignerError {
	return &SignerError{
		Backend: backend,
		Err:     err,
	}
}

func (e *SignerError) Error() string {
	return fmt.Sprintf("signer %s: %s", e.Backend, e.Err)
}

func (e *SignerError) Unwrap() error {
	return e.Err
}
