package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError marks invalid user input detected before any network
// call: bad regexes, conflicting flags, unreachable update targets. The CLI
// maps it to its own exit code.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ConfigErrorf builds a ConfigurationError from a format string.
func ConfigErrorf(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// WrapConfigError attaches a cause to a ConfigurationError.
func WrapConfigError(message string, err error) error {
	return &ConfigurationError{Message: message, Err: err}
}

// IsConfigurationError reports whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
