package errorx

import (
	"fmt"
)

// GENERAL ERROR:

// GeneralError - General App Error.
type GeneralError struct {
	message string
	err     error
}

// NewGeneralError - GeneralError constructor.
func NewGeneralError(msg string, args ...any) *GeneralError {
	return &GeneralError{message: fmt.Sprintf(msg, args...), err: nil}
}

// NewGeneralErrorWrapper - GeneralError constructor for wrapper of another error.
func NewGeneralErrorWrapper(err error, msg string, args ...any) *GeneralError {
	return &GeneralError{message: fmt.Sprintf(msg, args...), err: err}
}

// Error - return the error string.
func (ge *GeneralError) Error() string {
	if ge.err != nil {
		return fmt.Errorf("%s # Error wrap: %w", ge.message, ge.err).Error()
	}

	return ge.message
}

// Unwrap - return the wrapped error.
func (ge *GeneralError) Unwrap() error {
	return ge.err
}

// CONFIGURATION ERROR:

// ConfigurationError - error loading or validating application configuration.
type ConfigurationError struct {
	message string
	err     error
}

// NewConfigurationError - ConfigurationError constructor.
func NewConfigurationError(msg string, args ...any) *ConfigurationError {
	return &ConfigurationError{message: fmt.Sprintf(msg, args...), err: nil}
}

// NewConfigurationErrorWrapper - ConfigurationError constructor for wrapper of another error.
func NewConfigurationErrorWrapper(err error, msg string, args ...any) *ConfigurationError {
	return &ConfigurationError{message: fmt.Sprintf(msg, args...), err: err}
}

// Error - return the error string.
func (ce *ConfigurationError) Error() string {
	if ce.err != nil {
		return fmt.Sprintf("%s: %v", ce.message, ce.err)
	}

	return ce.message
}

// Unwrap - return the wrapped error.
func (ce *ConfigurationError) Unwrap() error {
	return ce.err
}
