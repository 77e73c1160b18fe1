package config

import "errors"

// Error variables define configuration loading failures.
var (
	// ErrNilConfig indicates Load was called with a nil pointer.
	ErrNilConfig = errors.New("config target cannot be nil")

	// ErrParseFailed wraps environment parsing errors, typically a
	// missing required variable or an unconvertible value.
	ErrParseFailed = errors.New("failed to parse environment config")
)
