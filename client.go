package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mintellifunds/mintellifunds/client/internal/config"
	clienterrors "github.com/mintellifunds/mintellifunds/client/internal/errors"
	"github.com/mintellifunds/mintellifunds/client/internal/mock"
	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/tokenstore"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the MintelliFunds dashboard backend. Construct one per
// backend with New; it is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	exec    *request.Executor
	tokens  *tokenstore.Store

	timeout     time.Duration
	retries     int
	backoffBase time.Duration

	storage    tokenstore.Storage
	storageSet bool

	devMode        bool
	mock           *mock.Provider
	onUnauthorized func()
	online         func() bool

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL (e.g. "http://localhost:8000").
// The persisted auth token, if any, is loaded before New returns.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:     baseURL,
		http:        &http.Client{},
		timeout:     request.DefaultTimeout,
		retries:     request.DefaultRetries,
		backoffBase: request.DefaultBackoffBase,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if !c.storageSet {
		c.storage = defaultStorage()
	}
	c.tokens = tokenstore.New(c.storage)
	c.tokens.Load()

	if c.devMode {
		p, err := mock.New()
		if err != nil {
			return nil, fmt.Errorf("load mock data: %w", err)
		}
		c.mock = p
	}

	retries := c.retries
	if retries == 0 {
		retries = request.NoRetry
	}
	c.exec = request.New(request.Config{
		BaseURL:        c.baseURL,
		HTTP:           c.http,
		Tokens:         c.tokens,
		Timeout:        c.timeout,
		Retries:        retries,
		BackoffBase:    c.backoffBase,
		OnUnauthorized: c.handleUnauthorized,
		Online:         c.online,
	})
	return c, nil
}

// NewFromConfig builds a Client from environment configuration. opts are
// applied after the configured values and may override them.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	base := []Option{
		WithTimeout(cfg.Timeout),
		WithRetries(cfg.Retries),
		WithBackoffBase(cfg.BackoffBase),
		WithDevMode(cfg.DevMode),
		WithDebugLogging(cfg.Debug),
	}
	if cfg.TokenStoreURL != "" {
		base = append(base, WithTokenStorageURL(cfg.TokenStoreURL))
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}

func defaultStorage() tokenstore.Storage {
	u, err := tokenstore.DefaultURL()
	if err != nil {
		log.Warn().Err(err).Msg("no config dir, auth token will not persist")
		return nil
	}
	return tokenstore.NewAFSStorage(u)
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string { return c.exec.BaseURL() }

// DevMode reports whether canned data is served when the backend is unreachable.
func (c *Client) DevMode() bool { return c.devMode }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

func (c *Client) handleUnauthorized() {
	log.Warn().Str("base_url", c.baseURL).Msg("session rejected, auth token cleared")
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// Do executes a raw call. path must include any query string. The error, if
// any, is an *Error. In dev mode a call that could not reach the backend is
// answered from the mock data set instead.
func (c *Client) Do(ctx context.Context, path string, opts RequestOptions) (*Result, error) {
	res, err := c.exec.Do(ctx, path, opts)
	if err == nil || c.mock == nil || !backendUnreachable(err) {
		return res, err
	}
	mockFallbacksTotal.Inc()
	log.Warn().Str("path", path).Str("cause", err.Error()).Msg("backend unreachable, serving mock data")
	return c.mockResult(path), nil
}

// backendUnreachable is true for transport failures: no response was received
// and the failure did not originate locally. A timeout is not one; the backend
// may be reachable but slow.
func backendUnreachable(err error) bool {
	if errors.Is(err, request.ErrEncodeBody) || errors.Is(err, request.ErrDecodeBody) {
		return false
	}
	apiErr, ok := clienterrors.As(err)
	if !ok || apiErr.Status != 0 {
		return false
	}
	switch apiErr.Kind {
	case clienterrors.Offline, clienterrors.Unknown:
		return true
	}
	return false
}

func (c *Client) mockResult(path string) *Result {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	return &Result{
		Status: http.StatusOK,
		Header: h,
		Body:   c.mock.Body(path),
		Value:  c.mock.Lookup(path),
	}
}

// --------------------------------------------------------------------
// Auth token
// --------------------------------------------------------------------

// SaveAuthToken makes token the bearer credential for subsequent calls and persists it.
func (c *Client) SaveAuthToken(token string) { c.tokens.Save(token) }

// ClearAuthToken forgets the bearer credential.
func (c *Client) ClearAuthToken() { c.tokens.Clear() }

// AuthToken returns the current bearer credential or "".
func (c *Client) AuthToken() string { return c.tokens.Token() }

// IsAuthenticated reports whether a token is held.
func (c *Client) IsAuthenticated() bool { return c.tokens.HasToken() }
