package rzd

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrReplyNotReady means the upstream answered a data request with a
	// fresh request id instead of the data. The caller should retry.
	ErrReplyNotReady = errors.New("upstream has not prepared the reply yet")

	// ErrServerOverloaded means the upstream never prepared a reply
	// within the polling budget.
	ErrServerOverloaded = errors.New("upstream is overloaded, change the query or try again later")
)

// ValidationError reports malformed input to a constructor. It is
// raised before any network activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DecodeError means a response envelope was structurally
// unrecognizable: not a known success shape, not a known empty-result
// shape. Distinct from "zero results", which is not an error.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "cannot decode upstream reply: " + e.Reason
}

// TransportError wraps an opaque failure from the transport
// collaborator (connection error, timeout, non-2xx status).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError carries error descriptions the upstream reported inside
// an otherwise well-formed envelope.
type ServerError struct {
	Messages []string
}

func (e *ServerError) Error() string {
	if len(e.Messages) == 0 {
		return "upstream reported an error"
	}

	return strings.Join(e.Messages, "; ")
}
