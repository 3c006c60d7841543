package gvesb

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrMissingAttribute - a required configuration attribute is absent or empty
	ErrMissingAttribute = Error("missing required attribute")

	// ErrMissingProperty - a message property the operation needs is not set
	ErrMissingProperty = Error("missing required message property")

	// ErrUnsupportedPayload - the message payload is not of a type the operation can consume
	ErrUnsupportedPayload = Error("unsupported payload type")
)

const (
	// CodeInitServiceError is the code carried by every InitializationError.
	CodeInitServiceError = "GV_INIT_SERVICE_ERROR"

	// CodeCallServiceError is the code carried by every CallError.
	CodeCallServiceError = "GV_CALL_SERVICE_ERROR"
)

// InitializationError is returned by CallOperation.Init when the configuration cannot be read or validated. It is
// fatal for the operation instance.
type InitializationError struct {
	Code   string
	Params map[string]string
	Err    error
}

// NewInitializationError wraps err, recording its text under the "message" parameter.
func NewInitializationError(err error) *InitializationError {
	return &InitializationError{
		Code:   CodeInitServiceError,
		Params: map[string]string{"message": err.Error()},
		Err:    err,
	}
}

func (e *InitializationError) Error() string {
	return e.Code + formatParams(e.Params)
}

// Unwrap returns the underlying cause.
func (e *InitializationError) Unwrap() error { return e.Err }

// CallError is returned by CallOperation.Perform for any failure during an invocation. Transient and permanent
// failures are not distinguished; the original error is kept as the cause.
type CallError struct {
	Code    string
	Service string
	System  string
	TID     string
	Message string
	Err     error
}

// NewCallError wraps err with the service, system and transaction id of msg.
func NewCallError(msg *Message, err error) *CallError {
	return &CallError{
		Code:    CodeCallServiceError,
		Service: msg.Service,
		System:  msg.System,
		TID:     msg.ID.String(),
		Message: err.Error(),
		Err:     err,
	}
}

func (e *CallError) Error() string {
	return e.Code + formatParams(map[string]string{
		"service": e.Service,
		"system":  e.System,
		"tid":     e.TID,
		"message": e.Message,
	})
}

// Unwrap returns the underlying cause.
func (e *CallError) Unwrap() error { return e.Err }

func formatParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%s", k, params[k])
	}
	return " [" + strings.Join(parts, ", ") + "]"
}
