package pocketsmith

import "fmt"

// ConfigError indicates a missing or empty required credential. It is
// returned before any network activity.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// APIError represents a non-2xx response from the PocketSmith API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pocketsmith API error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError represents a connection-level failure (connection refused,
// timeout). It is distinct from APIError and is never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// WritesDisabledError indicates a mutating operation was attempted while the
// write switch is off. No network call was made.
type WritesDisabledError struct{}

func (e *WritesDisabledError) Error() string {
	return fmt.Sprintf("write operations are disabled: set %s=true to enable them", AllowWritesEnv)
}
