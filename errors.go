package client

import (
	"net/http"

	clienterrors "github.com/mintellifunds/mintellifunds/client/internal/errors"
)

// Error is the normalized failure returned by every call.
type Error = clienterrors.APIError

// ErrorKind classifies an Error.
type ErrorKind = clienterrors.Kind

const (
	KindUnknown      = clienterrors.Unknown
	KindTimeout      = clienterrors.Timeout
	KindBadRequest   = clienterrors.BadRequest
	KindUnauthorized = clienterrors.Unauthorized
	KindForbidden    = clienterrors.Forbidden
	KindNotFound     = clienterrors.NotFound
	KindRateLimited  = clienterrors.RateLimited
	KindServerError  = clienterrors.ServerError
	KindHTTPStatus   = clienterrors.HTTPStatus
	KindOffline      = clienterrors.Offline
)

// AsError extracts the *Error from err.
func AsError(err error) (*Error, bool) { return clienterrors.As(err) }

// StatusCode returns the HTTP status carried by err, or 0 when no response was received.
func StatusCode(err error) int { return clienterrors.StatusOf(err) }

// IsUnauthorized reports whether the backend rejected the session.
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }

// IsNotFound reports whether the backend returned 404.
func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }

// IsTimeout reports whether the call ran out of time or was cancelled.
func IsTimeout(err error) bool { return clienterrors.KindOf(err) == clienterrors.Timeout }

// IsOffline reports whether the network was unavailable.
func IsOffline(err error) bool { return clienterrors.KindOf(err) == clienterrors.Offline }
