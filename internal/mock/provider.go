// Package mock serves canned backend responses for offline development.
package mock

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/mock.json
var defaultData []byte

// Provider maps endpoint paths to canned JSON documents.
type Provider struct {
	data map[string]json.RawMessage
}

// New returns a Provider over the embedded data set.
func New() (*Provider, error) {
	return FromJSON(defaultData)
}

// FromJSON builds a Provider from a {"<path>": <document>, ...} object.
func FromJSON(b []byte) (*Provider, error) {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse mock data: %w", err)
	}
	return &Provider{data: data}, nil
}

// Body returns the JSON document for path. Unknown paths get a
// {"message": ...} placeholder so callers always receive valid JSON.
func (p *Provider) Body(path string) []byte {
	if doc, ok := p.data[normalize(path)]; ok {
		return doc
	}
	b, _ := json.Marshal(map[string]string{"message": "Mock data not available for " + path})
	return b
}

// Lookup returns the decoded document for path.
func (p *Provider) Lookup(path string) any {
	var v any
	_ = json.Unmarshal(p.Body(path), &v)
	return v
}

// Has reports whether path has canned data.
func (p *Provider) Has(path string) bool {
	_, ok := p.data[normalize(path)]
	return ok
}

// Paths lists the endpoints with canned data, sorted.
func (p *Provider) Paths() []string {
	out := make([]string, 0, len(p.data))
	for k := range p.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// normalize drops the query string and any trailing slash.
func normalize(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
