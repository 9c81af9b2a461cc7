package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mintellifunds/mintellifunds/client/internal/tokenstore"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithTimeout sets the default overall budget of a call, retries included.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithRetries sets how many times a transport failure is retried. 0 disables retries.
func WithRetries(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("retries must be >= 0")
		}
		c.retries = n
		return nil
	}
}

// WithBackoffBase sets the first retry delay; each further retry doubles it.
func WithBackoffBase(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("backoff base must be > 0")
		}
		c.backoffBase = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout, a per-attempt cap
// below the call budget set by WithTimeout. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithTokenStorage sets where the auth token is persisted. nil keeps it in memory only.
func WithTokenStorage(s tokenstore.Storage) Option {
	return func(c *Client) error {
		c.storage = s
		c.storageSet = true
		return nil
	}
}

// WithTokenStorageURL persists the auth token below an afs URL such as
// "file:///home/me/.config/mintellifunds" or "mem://localhost/tokens".
func WithTokenStorageURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("token storage url cannot be empty")
		}
		c.storage = tokenstore.NewAFSStorage(baseURL)
		c.storageSet = true
		return nil
	}
}

// WithUnauthorizedHandler registers fn to run synchronously whenever a call
// receives 401, after the token has been cleared. Typically it shows a login prompt.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) error {
		c.onUnauthorized = fn
		return nil
	}
}

// WithDevMode serves canned data when the backend cannot be reached.
func WithDevMode(enabled bool) Option {
	return func(c *Client) error {
		c.devMode = enabled
		return nil
	}
}

// WithConnectivityCheck installs a probe consulted when a call fails; when it
// reports false the failure is surfaced as "No internet connection".
func WithConnectivityCheck(online func() bool) Option {
	return func(c *Client) error {
		c.online = online
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include payloads in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, wrapped := c.http.Transport.(*debugTransport); !wrapped {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
