package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every request and response at debug level.
//
// Enable with MINTELLI_DEBUG=true or DEBUG=true, or WithDebugLogging(true).
// The Authorization header is redacted; bodies are logged verbatim, so keep
// this out of production.
//
//	export MINTELLI_DEBUG=true
//	mintelli dashboard
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(redacted(req), true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// redacted returns a copy of req safe to dump: the bearer token is masked and
// the body is re-read through GetBody so req's own body stays unconsumed.
func redacted(req *http.Request) *http.Request {
	r := req.Clone(req.Context())
	if r.Header.Get("Authorization") != "" {
		r.Header.Set("Authorization", "Bearer [REDACTED]")
	}
	r.Body = nil
	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			r.Body = body
		}
	}
	return r
}

// debugLoggingRequested reports whether MINTELLI_DEBUG=true or DEBUG=true.
func debugLoggingRequested() bool {
	return os.Getenv("MINTELLI_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
