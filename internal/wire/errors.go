package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrAssertion matches every *AssertionError.
	ErrAssertion = errors.New("assertion error")
	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("decode error")

	ErrTruncated          = errors.New("truncated input")
	ErrTrailingBytes      = errors.New("trailing bytes")
	ErrVarintOverflow     = errors.New("varint overflows 64 bits")
	ErrNonCanonicalVarint = errors.New("varint is not minimally encoded")
	ErrInvalidBool        = errors.New("boolean byte is neither 0 nor 1")
)

// AssertionError reports a record that violates an encoding precondition.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string { return "Assertion error: " + e.Message }

// Is makes errors.Is(err, ErrAssertion) true for any AssertionError.
func (e *AssertionError) Is(target error) bool { return target == ErrAssertion }

// Assertf builds an *AssertionError.
func Assertf(format string, args ...any) error {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// DecodeError reports malformed input. What names the field being read and
// Offset is where in the buffer the failure was detected.
type DecodeError struct {
	What   string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s at offset %d: %v", e.What, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) true for any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// NewDecodeError builds a *DecodeError wrapping err.
func NewDecodeError(what string, off int, err error) error {
	return &DecodeError{What: what, Offset: off, Err: err}
}
