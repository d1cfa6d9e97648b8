package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRequestFailed = errors.New("request failed")
	ErrEncodeFailed  = errors.New("request encode failed")
	ErrDecodeFailed  = errors.New("response decode failed")
	ErrTransport     = errors.New("transport failure")

	ErrNotSucceeded = errors.New("backend did not report success")
)

// StatusError is returned for any non-2xx backend reply. It unwraps to
// ErrUnauthorized for 401 and ErrRequestFailed otherwise.
type StatusError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Endpoint, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return ErrRequestFailed
}

// StatusCode reports the backend status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}

func IsClientError(err error) bool {
	code, ok := StatusCode(err)
	return ok && code >= 400 && code < 500
}
