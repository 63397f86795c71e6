package schema

import "fmt"

// ErrorCode categorizes schema derivation errors
type ErrorCode string

const (
	// ErrCodeDerivation means the descriptor could not be turned into a
	// schema tree (malformed descriptor).
	ErrCodeDerivation ErrorCode = "derivation"
	// ErrCodeSerialization means the schema tree could not be serialized
	// to JSON. This should not occur for well-formed trees.
	ErrCodeSerialization ErrorCode = "serialization"
)

// Error represents a failure to derive a schema document
type Error struct {
	Code    ErrorCode // Categorized error code
	Message string    // Human-readable message
	Err     error     // Wrapped original error, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v (code=%s)", e.Message, e.Err, e.Code)
	}
	return fmt.Sprintf("%s (code=%s)", e.Message, e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// derivationError builds an ErrCodeDerivation error
func derivationError(format string, args ...any) *Error {
	return &Error{Code: ErrCodeDerivation, Message: fmt.Sprintf(format, args...)}
}
