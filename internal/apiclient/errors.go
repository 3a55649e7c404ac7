package apiclient

import (
	"errors"
	"fmt"
)

// FormatError means a response body did not have the expected shape,
// e.g. the event list was not a JSON array.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected response format from %s: %s", e.Path, e.Reason)
}

// NetworkError wraps a failure to reach the remote API at all.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response. Message is the server-provided
// "error" or "message" field when the body carried one.
type ServerError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// UserMessage returns the text a page should show in an alert for err,
// preferring the message the server sent.
func UserMessage(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return "Unable to reach the server"
	}
	return fallback
}
