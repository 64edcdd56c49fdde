// Package errors provides structured error values shared across site layers.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidInput marks a request body that could not be read.
	CodeInvalidInput Code = "INVALID_INPUT"

	// Access errors
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeForbidden          Code = "FORBIDDEN"

	// Storage errors
	CodeNotFound     Code = "NOT_FOUND"
	CodeStoreFailure Code = "STORE_FAILURE"

	// CodeSessionUnavailable marks a session backend outage.
	CodeSessionUnavailable Code = "SESSION_UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeSessionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
