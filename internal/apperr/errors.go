package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that carries the HTTP status and the message shown to clients.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	ErrUnauthorized       = &Error{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrInvalidCredentials = &Error{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
	ErrTooManyRequests    = &Error{Code: http.StatusTooManyRequests, Message: "Too many requests"}
	ErrInternal           = &Error{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// Status maps err to an HTTP status. Anything that is not an *Error is internal.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal.Code
}

// Message returns the client-facing message for err. Internal details never leak.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ErrInternal.Message
}
