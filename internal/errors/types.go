// Package errors defines the single error shape returned by the dashboard client
// and the rules that map transport failures and HTTP statuses onto it.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind identifies the originating condition of an APIError.
type Kind int

const (
	// Unknown covers anything not recognised below; the underlying message is kept as is.
	Unknown Kind = iota
	Timeout
	BadRequest
	Unauthorized
	Forbidden
	NotFound
	RateLimited
	ServerError
	// HTTPStatus is any other non-2xx status.
	HTTPStatus
	Offline
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Timeout:
		return "Timeout"
	case BadRequest:
		return "BadRequest"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "NotFound"
	case RateLimited:
		return "RateLimited"
	case ServerError:
		return "ServerError"
	case HTTPStatus:
		return "HTTPStatus"
	case Offline:
		return "Offline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// User-facing messages.
const (
	MsgTimeout      = "Request timeout"
	MsgBadRequest   = "Bad request - please check your input"
	MsgUnauthorized = "Unauthorized - please log in again"
	MsgForbidden    = "Access forbidden"
	MsgNotFound     = "Resource not found"
	MsgRateLimited  = "Too many requests - please try again later"
	MsgServerError  = "Internal server error - please try again"
	MsgOffline      = "No internet connection"
)

// Local failures: the call either never reached the network or its response
// was received but could not be decoded. Neither says anything about connectivity.
var (
	ErrEncodeBody = stderrors.New("encode request body")
	ErrDecodeBody = stderrors.New("parse JSON response")
)

// APIError is the normalized failure of a client call.
type APIError struct {
	Kind    Kind
	Status  int    // HTTP status code (0 for transport failures)
	Message string // user-facing message
	Detail  string // backend supplied detail, if any

	// Raw response parts, set when a response was received.
	Body   []byte
	Header http.Header

	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// As reports whether err is, or wraps, an *APIError.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or Unknown if err is not an APIError.
func KindOf(err error) Kind {
	if apiErr, ok := As(err); ok {
		return apiErr.Kind
	}
	return Unknown
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if apiErr, ok := As(err); ok {
		return apiErr.Status
	}
	return 0
}
