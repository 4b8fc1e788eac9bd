package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized marks a 401-class response. The session is considered
// invalid, deciding what to do about it belongs to the caller.
var ErrUnauthorized = errors.New("session is not authenticated")

// TransportError is a network failure or a non-2xx HTTP status. Retrying is
// a manual user action, the client never retries on its own.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// PayloadError is an HTTP success whose body reported success=false.
type PayloadError struct {
	Op      string
	Message string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

const genericFailure = "the backend reported a failure"

func payloadMessage(msgs ...string) string {
	for _, m := range msgs {
		if m != "" {
			return m
		}
	}
	return genericFailure
}
