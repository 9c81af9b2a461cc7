package mock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Lookup(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	dash, ok := p.Lookup("/api/dashboard").(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 15420.75, dash["total_balance"])

	// query strings and trailing slashes do not matter
	assert.True(t, p.Has("/api/transactions?limit=5&category=Food"))
	assert.True(t, p.Has("/api/budgets/"))
}

func TestProvider_Placeholder(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	assert.False(t, p.Has("/api/unknown"))
	assert.Equal(t, map[string]any{"message": "Mock data not available for /api/unknown"}, p.Lookup("/api/unknown"))
	assert.True(t, json.Valid(p.Body("/api/unknown")))
}

func TestProvider_EveryDocumentIsValidJSON(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	require.NotEmpty(t, p.Paths())
	for _, path := range p.Paths() {
		assert.True(t, json.Valid(p.Body(path)), path)
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte("nope"))
	assert.Error(t, err)
}
