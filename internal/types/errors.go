package types

import "fmt"

// ValidationError indicates a missing or blank required field in a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigError indicates a server-side misconfiguration, such as a missing API key.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UnavailableError indicates that no usable generative model could be found.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	return e.Message
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// UpstreamError represents a failed AI provider call or an unparseable reply.
// Message carries the underlying error text verbatim.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ExportError represents a filesystem or rendering failure while producing an export artifact.
type ExportError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
