package errors

import "fmt"

// HTTPError is an error carrying the HTTP status code and client-facing
// message it should be rendered with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates a new HTTPError. The code doubles as both the HTTP
// status and the envelope error_code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: code,
		Code:       code,
		Message:    message,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
