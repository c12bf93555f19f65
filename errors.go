package hostedpay

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingServer is returned when no gateway server URL is configured.
	// No payment request can be built without one.
	ErrMissingServer = errors.New("hostedpay: a server URL must be configured to use the hosted gateway")
	// ErrInvalidConfig wraps any other configuration constraint violation.
	ErrInvalidConfig = errors.New("hostedpay: invalid gateway configuration")
	// ErrMissingOrder is returned when a nil order is passed to the outbound path.
	ErrMissingOrder = errors.New("hostedpay: order is required")
	// ErrOrderNotFound is returned by [OrderFinder] implementations when no
	// order matches the number.
	ErrOrderNotFound = errors.New("hostedpay: order not found")
)

// ErrorType mirrors the error.type field of JSON error responses.
type ErrorType string

const (
	InvalidRequest  ErrorType = "invalid_request"  // Missing or malformed parameter.
	ProcessingError ErrorType = "processing_error" // Failure inside the return processor.
)

// ErrorCode is a machine-readable identifier for the specific failure.
type ErrorCode string

const (
	UnknownOutcome    ErrorCode = "unknown_outcome"    // Return path names no known outcome.
	InvalidParameters ErrorCode = "invalid_parameters" // Return parameters could not be parsed.
)

// Error represents a structured JSON error payload of the return handler.
type Error struct {
	Type    ErrorType `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Param   *string   `json:"param,omitempty"`

	status int
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// StatusCode returns the HTTP status code sent with the error.
func (e *Error) StatusCode() int {
	if e == nil || e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

type errorOption func(*Error)

// WithOffendingParam sets the name of the parameter that triggered the error.
func WithOffendingParam(name string) errorOption {
	return func(er *Error) {
		er.Param = &name
	}
}

// WithStatusCode overrides the HTTP status code returned to the client.
func WithStatusCode(status int) errorOption {
	return func(er *Error) {
		er.status = status
	}
}

// NewInvalidRequestError builds a Bad Request error payload.
func NewInvalidRequestError(message string, opts ...errorOption) *Error {
	return newError(InvalidRequest, ErrorCode(InvalidRequest), message, append([]errorOption{WithStatusCode(http.StatusBadRequest)}, opts...)...)
}

// NewProcessingError builds an Internal Server Error payload.
func NewProcessingError(message string, opts ...errorOption) *Error {
	return newError(ProcessingError, ErrorCode(ProcessingError), message, append([]errorOption{WithStatusCode(http.StatusInternalServerError)}, opts...)...)
}

// NewHTTPError allows callers to control the status code explicitly.
func NewHTTPError(status int, typ ErrorType, code ErrorCode, message string, opts ...errorOption) *Error {
	return newError(typ, code, message, append(opts, WithStatusCode(status))...)
}

func newError(typ ErrorType, code ErrorCode, message string, opts ...errorOption) *Error {
	errPayload := &Error{
		Type:    typ,
		Code:    code,
		Message: message,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(errPayload)
	}
	return errPayload
}
