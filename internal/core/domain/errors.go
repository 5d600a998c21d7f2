package domain

import "errors"

var (
	// ErrEmptyTopic is returned when the brief is missing.
	ErrEmptyTopic = errors.New("briefing is required for generation")
	// ErrMissingAPIKey is returned when no provider credential is configured.
	ErrMissingAPIKey = errors.New("api configuration missing")
	// ErrUnknownLength is returned for a tier absent from the length policy.
	ErrUnknownLength = errors.New("unknown length tier")
)

// ValidationError reports bad user input. No provider call is made.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// ConfigurationError reports a deployment problem such as a missing
// credential or an incomplete length policy. No provider call is made.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string { return "configuration: " + e.Err.Error() }
func (e *ConfigurationError) Unwrap() error { return e.Err }

// ProviderError wraps any failure of the model call. Error returns the
// provider's message unchanged so it can be shown to the user verbatim.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }
