// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so commands can tell a failed exchange apart from a
// rejected request or an unreadable response without string matching.
//
// The package supports wrapping underlying errors while maintaining error kind information.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// TransportFailed indicates the HTTP exchange could not be completed
	// (DNS, TLS, timeout, connection reset, unreadable body).
	TransportFailed Kind = "transport_failed"
	// UnexpectedStatus indicates the server answered outside the accepted status set.
	UnexpectedStatus Kind = "unexpected_status"
	// InvalidJSON indicates a success response whose body could not be parsed.
	InvalidJSON Kind = "invalid_json"
	// InvalidInput indicates a payload or query that failed validation before sending.
	InvalidInput Kind = "invalid_input"
)

// E wraps an error with kind and human-friendly message.
// StatusCode and Body are set for UnexpectedStatus errors.
type E struct {
	Kind       Kind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Status builds an UnexpectedStatus error carrying the response code and text.
func Status(code int, body string) *E {
	return &E{
		Kind:       UnexpectedStatus,
		Message:    fmt.Sprintf("request failed with status code: %d", code),
		StatusCode: code,
		Body:       body,
	}
}

// KindOf returns the kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
