package tokenizer

import "fmt"

// ErrorCode categorizes tokenizer selection errors
type ErrorCode string

const (
	// ErrCodeUnavailable means not even the fallback encoding could be
	// constructed. Callers treat this as fatal.
	ErrCodeUnavailable ErrorCode = "unavailable"
)

// Error represents a failure to construct a tokenizer
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
