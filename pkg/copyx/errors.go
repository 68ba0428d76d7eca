package copyx

import "fmt"

// CONSTRUCTION ERROR:

// ConstructionError - an empty instance of a concrete type could not be obtained.
type ConstructionError struct {
	message string
	err     error
}

// NewConstructionError - ConstructionError constructor.
func NewConstructionError(msg string, args ...any) *ConstructionError {
	return &ConstructionError{message: fmt.Sprintf(msg, args...), err: nil}
}

// NewConstructionErrorWrapper - ConstructionError constructor for wrapper of another error.
func NewConstructionErrorWrapper(err error, msg string, args ...any) *ConstructionError {
	return &ConstructionError{message: fmt.Sprintf(msg, args...), err: err}
}

// Error - return the error string.
func (ce *ConstructionError) Error() string {
	if ce.err != nil {
		return fmt.Sprintf("%s: %v", ce.message, ce.err)
	}

	return ce.message
}

// Unwrap - return the wrapped error.
func (ce *ConstructionError) Unwrap() error {
	return ce.err
}

// FIELD ACCESS ERROR:

// FieldAccessError - a declared field could not be read from the original or written to the copy.
type FieldAccessError struct {
	message string
	err     error
}

// NewFieldAccessError - FieldAccessError constructor.
func NewFieldAccessError(msg string, args ...any) *FieldAccessError {
	return &FieldAccessError{message: fmt.Sprintf(msg, args...), err: nil}
}

// NewFieldAccessErrorWrapper - FieldAccessError constructor for wrapper of another error.
func NewFieldAccessErrorWrapper(err error, msg string, args ...any) *FieldAccessError {
	return &FieldAccessError{message: fmt.Sprintf(msg, args...), err: err}
}

// Error - return the error string.
func (fe *FieldAccessError) Error() string {
	if fe.err != nil {
		return fmt.Sprintf("%s: %v", fe.message, fe.err)
	}

	return fe.message
}

// Unwrap - return the wrapped error.
func (fe *FieldAccessError) Unwrap() error {
	return fe.err
}

// UNSUPPORTED CONTAINER ERROR:

// UnsupportedContainerError - a container type exposes no way to create an
// empty instance of its concrete shape.
type UnsupportedContainerError struct {
	message string
	err     error
}

// NewUnsupportedContainerError - UnsupportedContainerError constructor.
func NewUnsupportedContainerError(msg string, args ...any) *UnsupportedContainerError {
	return &UnsupportedContainerError{message: fmt.Sprintf(msg, args...), err: nil}
}

// NewUnsupportedContainerErrorWrapper - UnsupportedContainerError constructor for wrapper of another error.
func NewUnsupportedContainerErrorWrapper(err error, msg string, args ...any) *UnsupportedContainerError {
	return &UnsupportedContainerError{message: fmt.Sprintf(msg, args...), err: err}
}

// Error - return the error string.
func (ue *UnsupportedContainerError) Error() string {
	if ue.err != nil {
		return fmt.Sprintf("%s: %v", ue.message, ue.err)
	}

	return ue.message
}

// Unwrap - return the wrapped error.
func (ue *UnsupportedContainerError) Unwrap() error {
	return ue.err
}
