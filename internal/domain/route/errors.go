package route

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is wrapped by ConfigurationError for unusable route patterns.
	ErrInvalidPattern = errors.New("invalid route pattern")

	// ErrUnknownBuilder is wrapped by ConfigurationError when a route names an unregistered builder.
	ErrUnknownBuilder = errors.New("unknown builder")

	// ErrNilFactory is wrapped by ConfigurationError for entries without a builder factory.
	ErrNilFactory = errors.New("nil builder factory")
)

// ConfigurationError reports a route table that cannot be built.
// It is a programming or configuration mistake, not a runtime condition.
type ConfigurationError struct {
	Op      string // e.g. "compile", "resolve"
	Pattern string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("route %s %q: %v", e.Op, e.Pattern, e.Err)
	}
	return fmt.Sprintf("route %s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
