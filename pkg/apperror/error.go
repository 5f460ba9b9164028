package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest signals a missing or malformed client input.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound signals that no record exists for the given identifier.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Unavailable signals that a long-lived dependency (document store, object
// store) failed to initialize at startup.
func Unavailable(message string) *AppError {
	return New(http.StatusInternalServerError, message, nil)
}

// Internal wraps an upstream failure. The message is surfaced to the caller
// as-is.
func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
