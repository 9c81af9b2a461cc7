package request

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NoRetry disables retries for a single call when used as Options.Retries.
const NoRetry = -1

// Options configures a single call. Zero values fall back to the executor defaults.
type Options struct {
	Method  string            // default GET
	Data    any               // JSON-encoded body, ignored for GET
	Headers map[string]string // merged over the default headers
	Timeout time.Duration     // overall budget for the call including retries
	Retries int               // retries after the first attempt; NoRetry for none
}

func (o Options) method() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

// Result is a successful (2xx) response.
type Result struct {
	Status int
	Header http.Header
	Body   []byte

	// Value is the decoded JSON document when the response declared JSON,
	// otherwise the body as a string.
	Value any
}

// JSON reports whether the response declared a JSON content type.
func (r *Result) JSON() bool {
	return isJSON(r.Header.Get("Content-Type"))
}

// Text returns the raw body.
func (r *Result) Text() string {
	return string(r.Body)
}

// Decode unmarshals a JSON body into v.
func (r *Result) Decode(v any) error {
	if !r.JSON() {
		return fmt.Errorf("decode: response is %q, not JSON", r.Header.Get("Content-Type"))
	}
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
