// Package wproj structured error types for kernel configuration and
// verification failures.
package wproj

import "fmt"

// ErrorType represents categories of errors raised by the package.
type ErrorType int

const (
	// Invalid argument errors (bad configuration, mismatched lengths)
	ErrTypeInvalidArg ErrorType = iota
	// Bounds errors (offset table incompatible with grid or kernel table)
	ErrTypeBounds
	// Verification errors (serial/parallel outputs disagree)
	ErrTypeVerify
)

// String returns the error type as a string.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeBounds:
		return "Bounds"
	case ErrTypeVerify:
		return "Verification"
	default:
		return "Unknown"
	}
}

// KernelError represents a structured error with the operation that failed.
type KernelError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface.
func (e *KernelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wproj %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("wproj %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection.
func (e *KernelError) Unwrap() error {
	return e.Err
}

// NewInvalidArgError creates an invalid argument error.
func NewInvalidArgError(op, message string) error {
	return &KernelError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewBoundsError creates a bounds error for an offset table whose entries
// would read or write outside the grid or the convolution-function table.
func NewBoundsError(op, message string) error {
	return &KernelError{
		Type:    ErrTypeBounds,
		Op:      op,
		Message: message,
	}
}

// NewVerifyError creates a verification error.
func NewVerifyError(op, message string) error {
	return &KernelError{
		Type:    ErrTypeVerify,
		Op:      op,
		Message: message,
	}
}
