package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

// FromResponse builds the APIError for a received non-2xx response.
// The backend reports failures as {"detail": "..."}; when present the detail is kept.
func FromResponse(statusCode int, header http.Header, body []byte) *APIError {
	underlying := fmt.Errorf("HTTP error! status: %d", statusCode)
	e := &APIError{
		Kind:   kindForStatus(statusCode),
		Status: statusCode,
		Body:   body,
		Header: header,
		Detail: detailFromBody(body),
		Cause:  underlying,
	}
	e.Message = messageFor(e.Kind, underlying)
	return e
}

// Normalize converts any failure into an APIError. Errors that already are
// APIErrors are returned untouched. online may be nil; when it reports false
// a failure that did not originate locally is classified as Offline.
func Normalize(err error, online func() bool) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := As(err); ok {
		return apiErr
	}

	kind := Unknown
	switch {
	case isAbort(err):
		kind = Timeout
	case isLocal(err):
		kind = Unknown
	case online != nil && !online():
		kind = Offline
	case isNetworkUnreachable(err):
		kind = Offline
	}
	return &APIError{Kind: kind, Message: messageFor(kind, err), Cause: err}
}

// IsRetryable reports whether a transport-level failure may be attempted again.
// Aborted requests and 401 responses are final.
func IsRetryable(err error) bool {
	apiErr, ok := As(err)
	if !ok {
		return !isAbort(err)
	}
	if apiErr.Kind == Timeout || apiErr.Status == http.StatusUnauthorized {
		return false
	}
	return true
}

func kindForStatus(statusCode int) Kind {
	switch statusCode {
	case http.StatusBadRequest:
		return BadRequest
	case http.StatusUnauthorized:
		return Unauthorized
	case http.StatusForbidden:
		return Forbidden
	case http.StatusNotFound:
		return NotFound
	case http.StatusTooManyRequests:
		return RateLimited
	case http.StatusInternalServerError:
		return ServerError
	default:
		return HTTPStatus
	}
}

func messageFor(kind Kind, underlying error) string {
	switch kind {
	case Timeout:
		return MsgTimeout
	case BadRequest:
		return MsgBadRequest
	case Unauthorized:
		return MsgUnauthorized
	case Forbidden:
		return MsgForbidden
	case NotFound:
		return MsgNotFound
	case RateLimited:
		return MsgRateLimited
	case ServerError:
		return MsgServerError
	case HTTPStatus:
		return "Server error: " + underlying.Error()
	case Offline:
		return MsgOffline
	default:
		return underlying.Error()
	}
}

// isAbort matches a fired timeout guard, a cancelled context and client-side
// deadlines enforced by net/http.
func isAbort(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func isLocal(err error) bool {
	return stderrors.Is(err, ErrEncodeBody) || stderrors.Is(err, ErrDecodeBody)
}

func isNetworkUnreachable(err error) bool {
	if stderrors.Is(err, syscall.ENETUNREACH) ||
		stderrors.Is(err, syscall.ENETDOWN) ||
		stderrors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) {
		// "no such host" is a bad address, not a missing network.
		return !dnsErr.IsNotFound
	}
	return false
}

func detailFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}
	return string(payload.Detail)
}
