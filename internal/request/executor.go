// Package request runs a single REST call against the dashboard backend:
// header composition, an overall timeout, retries with exponential backoff
// for transport failures, and normalization of every failure into an
// *errors.APIError.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	clienterrors "github.com/mintellifunds/mintellifunds/client/internal/errors"
)

const (
	DefaultTimeout     = 10 * time.Second
	DefaultRetries     = 3
	DefaultBackoffBase = time.Second
)

// HeaderXRequestID is set on every call so backend logs can be correlated.
const HeaderXRequestID = "X-Request-ID"

// Local failures that never reached or never came back from the network.
var (
	ErrEncodeBody = clienterrors.ErrEncodeBody
	ErrDecodeBody = clienterrors.ErrDecodeBody
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource provides the bearer token and is cleared on 401.
type TokenSource interface {
	Token() string
	Clear()
}

// Config holds executor dependencies and defaults.
type Config struct {
	BaseURL     string
	HTTP        HTTPClient
	Tokens      TokenSource // may be nil
	Timeout     time.Duration
	Retries     int // 0 means DefaultRetries, NoRetry disables
	BackoffBase time.Duration

	// OnUnauthorized runs synchronously after a 401 cleared the token.
	OnUnauthorized func()
	// Online reports network connectivity; nil means unknown.
	Online func() bool
}

// Executor is safe for concurrent use; it holds no per-call state.
type Executor struct {
	cfg Config
}

// New fills in defaults for zero fields of cfg.
func New(cfg Config) *Executor {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTP == nil {
		cfg.HTTP = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	switch {
	case cfg.Retries == NoRetry:
		cfg.Retries = 0
	case cfg.Retries <= 0:
		cfg.Retries = DefaultRetries
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = DefaultBackoffBase
	}
	return &Executor{cfg: cfg}
}

// BaseURL returns the origin every path is resolved against.
func (e *Executor) BaseURL() string { return e.cfg.BaseURL }

// Do executes the call. path must start with "/" and already carry its query
// string. Any returned error is an *errors.APIError.
func (e *Executor) Do(ctx context.Context, path string, opts Options) (*Result, error) {
	method := opts.method()
	start := time.Now()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = e.cfg.Timeout
	}
	retries := e.retries(opts.Retries)

	// The guard spans every attempt and backoff wait; cancel disarms it on all exits.
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := encodeBody(method, opts.Data)
	if err != nil {
		return nil, e.fail(method, path, 0, start, err)
	}
	header := e.composeHeader(opts.Headers)
	target := e.cfg.BaseURL + path

	exp := newBackOff(e.cfg.BackoffBase)
	attempts := 0
	for {
		attempts++
		resp, err := e.send(ctx, method, target, header, body)
		if err == nil {
			return e.handleResponse(method, path, attempts, start, resp)
		}
		if attempts > retries || !clienterrors.IsRetryable(err) {
			return nil, e.fail(method, path, attempts, start, err)
		}

		wait := exp.NextBackOff()
		retriesTotal.WithLabelValues(method).Inc()
		log.Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Int("attempt", attempts).
			Dur("backoff", wait).
			Msg("request failed, retrying")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, e.fail(method, path, attempts, start, ctx.Err())
		case <-timer.C:
		}
	}
}

func (e *Executor) retries(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 0:
		return n
	default:
		return e.cfg.Retries
	}
}

func (e *Executor) composeHeader(extra map[string]string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set(HeaderXRequestID, uuid.NewString())
	for k, v := range extra {
		h.Set(k, v)
	}
	if e.cfg.Tokens != nil {
		if token := e.cfg.Tokens.Token(); token != "" {
			h.Set("Authorization", "Bearer "+token)
		}
	}
	return h
}

func encodeBody(method string, data any) ([]byte, error) {
	if data == nil || method == http.MethodGet {
		return nil, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}
	return b, nil
}

// response is a fully read HTTP response.
type response struct {
	status int
	header http.Header
	body   []byte
}

// send performs one attempt. Any error, including a failed body read, is a transport failure.
func (e *Executor) send(ctx context.Context, method, target string, header http.Header, body []byte) (*response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header = header.Clone()

	resp, err := e.cfg.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &response{status: resp.StatusCode, header: resp.Header, body: data}, nil
}

func (e *Executor) handleResponse(method, path string, attempts int, start time.Time, resp *response) (*Result, error) {
	if resp.status < 200 || resp.status > 299 {
		if resp.status == http.StatusUnauthorized {
			unauthorizedTotal.Inc()
			if e.cfg.Tokens != nil {
				e.cfg.Tokens.Clear()
			}
			if e.cfg.OnUnauthorized != nil {
				e.cfg.OnUnauthorized()
			}
		}
		return nil, e.fail(method, path, attempts, start, clienterrors.FromResponse(resp.status, resp.header, resp.body))
	}

	res := &Result{Status: resp.status, Header: resp.header, Body: resp.body}
	if res.JSON() {
		if len(resp.body) > 0 {
			if err := json.Unmarshal(resp.body, &res.Value); err != nil {
				return nil, e.fail(method, path, attempts, start, fmt.Errorf("%w: %w", ErrDecodeBody, err))
			}
		}
	} else {
		res.Value = string(resp.body)
	}

	requestsTotal.WithLabelValues(method, "ok").Inc()
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.status).
		Int("attempts", attempts).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")
	return res, nil
}

// fail normalizes err, logs it and records metrics.
func (e *Executor) fail(method, path string, attempts int, start time.Time, err error) *clienterrors.APIError {
	apiErr := clienterrors.Normalize(err, e.cfg.Online)
	requestsTotal.WithLabelValues(method, apiErr.Kind.String()).Inc()
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	evt := log.Error().
		Err(apiErr.Cause).
		Str("method", method).
		Str("path", path).
		Str("kind", apiErr.Kind.String()).
		Int("attempts", attempts).
		Dur("elapsed", time.Since(start))
	if apiErr.Status > 0 {
		evt = evt.Int("status", apiErr.Status)
	}
	if apiErr.Detail != "" {
		evt = evt.Str("detail", apiErr.Detail)
	}
	evt.Msg(apiErr.Message)
	return apiErr
}

func newBackOff(base time.Duration) *backoff.ExponentialBackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = base
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = base << 10
	exp.MaxElapsedTime = 0
	exp.Reset()
	return exp
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
