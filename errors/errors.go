package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified error type for the kit.
type Error struct {
	// Code is a machine-readable error code.
	Code Code `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with automatic retryable detection.
func New(code Code, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// Usage creates a new Error for a precondition violated by the caller.
func Usage(message string) *Error {
	return &Error{
		Code: CodeUsage, Message: message,
		Retryable: false,
	}
}

// SpecMismatch creates a new Error for composing filters across
// incompatible endpoint kinds.
func SpecMismatch(outputKind, inputKind string) *Error {
	return &Error{
		Code: CodeSpecMismatch, Message: fmt.Sprintf("cannot pipe %s output into %s input", outputKind, inputKind),
		Retryable: false,
		Details:   map[string]any{"output_kind": outputKind, "input_kind": inputKind},
	}
}

// Unsupported creates a new Error for a reserved, not-yet-delivered path.
func Unsupported(feature string) *Error {
	return &Error{
		Code: CodeUnsupported, Message: fmt.Sprintf("%s is not supported yet", feature),
		Retryable: false,
		Details:   map[string]any{"feature": feature},
	}
}

// Internal creates a new Error for a contract violation inside the kit.
func Internal(reason string) *Error {
	return &Error{
		Code: CodeInternal, Message: reason,
		Retryable: false,
	}
}

// ProcessFailed creates a new Error for a subprocess that exited nonzero
// or could not be started.
func ProcessFailed(binary string, exitCode int, cause error) *Error {
	return &Error{
		Code: CodeProcessFailed, Message: fmt.Sprintf("command %q failed with exit code %d", binary, exitCode),
		Retryable: false,
		Details:   map[string]any{"binary": binary, "exit_code": exitCode},
		Cause:     cause,
	}
}

// Timeout creates a new Error for an operation that exceeded its deadline.
func Timeout(operation string, cause error) *Error {
	return &Error{
		Code: CodeTimeout, Message: fmt.Sprintf("%s timed out", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
		Cause:     cause,
	}
}

// --- Predicates ---

// IsCode returns true if err (or anything it wraps) carries the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}

// IsUsage returns true for usage-class errors: plain usage violations and
// composition kind mismatches.
func IsUsage(err error) bool {
	return IsCode(err, CodeUsage) || IsCode(err, CodeSpecMismatch)
}

// IsUnsupported returns true if err marks a reserved, unimplemented path.
func IsUnsupported(err error) bool {
	return IsCode(err, CodeUnsupported)
}

// IsInternal returns true if err marks a contract violation inside the kit.
func IsInternal(err error) bool {
	return IsCode(err, CodeInternal)
}
