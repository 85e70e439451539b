// Package apierror defines the closed error taxonomy shared by every
// upstream call. Clients translate transport failures into one of these
// kinds; downstream code never sees a raw transport error.
package apierror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Kind identifies the failure class, machine-readable.
type Kind string

const (
	KindTimeout    Kind = "TIMEOUT"
	KindNotFound   Kind = "NOT_FOUND"
	KindServer     Kind = "SERVER_ERROR"
	KindConnection Kind = "CONNECTION_ERROR"
	KindValidation Kind = "VALIDATION_ERROR"
	KindUnknown    Kind = "UNKNOWN"
)

// userMessages are safe to show to end users. Detail never is.
var userMessages = map[Kind]string{
	KindTimeout:    "The sports data service took too long to respond. Please try again.",
	KindNotFound:   "The requested sports data could not be found.",
	KindServer:     "The sports data service is currently unavailable. Please try again later.",
	KindConnection: "Could not reach the sports data service. Please try again later.",
	KindValidation: "The request was invalid. Please check the parameters and try again.",
	KindUnknown:    "An unexpected error occurred while fetching sports data.",
}

// Error carries a taxonomy kind, a technical detail string for logs,
// and an optional wrapped cause.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the user-safe message for the error's kind.
func (e *Error) UserMessage() string {
	if msg, ok := userMessages[e.Kind]; ok {
		return msg
	}
	return userMessages[KindUnknown]
}

// New builds an error of the given kind with a formatted detail string.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap attaches a taxonomy kind to an underlying cause.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the taxonomy kind from any error. Errors that did not
// originate from this package report KindUnknown.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// FromStatus maps an upstream HTTP status code to the taxonomy.
func FromStatus(status int, endpoint string) *Error {
	switch {
	case status == http.StatusNotFound:
		return New(KindNotFound, "endpoint not found: %s", endpoint)
	case status >= 500:
		return New(KindServer, "upstream returned %d for %s", status, endpoint)
	default:
		return New(KindUnknown, "upstream returned %d for %s", status, endpoint)
	}
}

// FromTransport maps a low-level request error (DNS, connect, timeout,
// cancellation) to the taxonomy. Unrecognized failures are wrapped as
// KindUnknown with the original type name preserved for diagnostics.
func FromTransport(err error, timeout time.Duration) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(KindTimeout, err, "request timed out after %s", timeout)
	case errors.As(err, &netErr) && netErr.Timeout():
		return Wrap(KindTimeout, err, "request timed out after %s", timeout)
	case errors.Is(err, context.Canceled):
		return Wrap(KindConnection, err, "request canceled")
	case errors.As(err, &netErr):
		return Wrap(KindConnection, err, "network error: %v", err)
	default:
		return Wrap(KindUnknown, err, "unexpected error (%T): %v", err, err)
	}
}
