package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemExists   = errors.New("item already exists")
	ErrItemNotFound = errors.New("item not found")
)

// ConfigError reports a swipe configuration problem detected at setup,
// before any gesture is handled. It is distinct from runtime faults so the
// host can render a configuration diagnostic instead of a code exception.
type ConfigError struct {
	Element string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Element == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Element, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(element, format string, args ...any) *ConfigError {
	return &ConfigError{Element: element, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err wraps a ConfigError
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
