package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
)

// recordingDoer answers every call with body and remembers what was asked.
type recordingDoer struct {
	path string
	opts request.Options
	body string
	err  error
}

func (r *recordingDoer) Do(_ context.Context, path string, opts request.Options) (*request.Result, error) {
	r.path = path
	r.opts = opts
	if r.err != nil {
		return nil, r.err
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	var v any
	_ = json.Unmarshal([]byte(r.body), &v)
	return &request.Result{Status: http.StatusOK, Header: h, Body: []byte(r.body), Value: v}, nil
}

func newDoer(body string) *recordingDoer { return &recordingDoer{body: body} }
