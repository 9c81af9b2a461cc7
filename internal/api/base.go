package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
)

// Doer executes a call against the backend; *request.Executor implements it.
type Doer interface {
	Do(ctx context.Context, path string, opts request.Options) (*request.Result, error)
}

// call runs the request and decodes the JSON response into T.
func call[T any](ctx context.Context, d Doer, path string, opts request.Options) (*T, error) {
	res, err := d.Do(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	var out T
	if err := res.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// withQuery appends non-empty query values to path.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func segment(s string) string {
	return url.PathEscape(s)
}
