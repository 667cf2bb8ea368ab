package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigError reports that the client cannot issue requests at all.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// errNoBaseURL is returned by every operation when no base URL is configured.
var errNoBaseURL = &ConfigError{Reason: "API Base URL is not set"}

// ValidationError is a client-side rule violation. No request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError with a user-facing message.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NetworkError reports a request that did not reach the server or whose
// response could not be read.
type NetworkError struct {
	Op        string
	RequestID string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a request the server answered with an error status.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

// UserMessage extracts the text to show an operator for err. Server messages
// are preferred verbatim; transport failures fall back to the error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return "Configuration error: " + cfgErr.Reason + "."
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.Message); msg != "" {
			return msg
		}
		if text := http.StatusText(apiErr.Status); text != "" {
			return text
		}
		return apiErr.Error()
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Err != nil {
		return netErr.Err.Error()
	}
	return err.Error()
}

// RequestID returns the request id carried by err, if any.
func RequestID(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.RequestID
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.RequestID
	}
	return ""
}
