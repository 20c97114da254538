package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks a request the backend rejected for a missing or
// expired session token. The backend is the source of truth for token
// validity; the client never pre-validates token shape.
var ErrUnauthorized = errors.New("session token missing or rejected")

// RequestError represents a failed round trip to the prediction backend:
// either a transport failure (StatusCode 0) or a non-2xx response.
type RequestError struct {
	Op         string // endpoint operation, e.g. "predict delay"
	StatusCode int    // zero when the request never reached the server
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: backend returned status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

// IsAuthError reports whether err stems from a rejected session token.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func transportError(op string, err error) *RequestError {
	return &RequestError{Op: op, Message: err.Error(), Err: err}
}

func statusError(op string, status int, body string) *RequestError {
	e := &RequestError{Op: op, StatusCode: status, Message: body}
	if status == 401 || status == 403 {
		e.Err = ErrUnauthorized
	}
	return e
}
