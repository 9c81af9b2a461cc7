package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintellifunds/mintellifunds/client"
	"github.com/mintellifunds/mintellifunds/client/internal/mock"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	p, err := mock.New()
	require.NoError(t, err)
	srv := httptest.NewServer(newRouter(p))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_ServesMockDocuments(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/dashboard?x=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	missing, err := http.Get(srv.URL + "/api/nope")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestRouter_LoginValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", strings.NewReader(`{"username":"demo"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_EndToEndWithClient(t *testing.T) {
	srv := newTestServer(t)

	c, err := client.New(srv.URL, client.WithTokenStorage(nil), client.WithTimeout(5*time.Second))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	ctx := context.Background()
	resp, err := c.Login(ctx, "demo", "pw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.AccessToken, "mock-"))
	assert.Equal(t, "demo", resp.UserInfo.Username)
	assert.True(t, c.IsAuthenticated())

	dash, err := c.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15420.75, dash.TotalBalance)

	txs, err := c.ListTransactions(ctx, client.TransactionFilter{Limit: 5})
	require.NoError(t, err)
	assert.NotEmpty(t, txs.Transactions)

	_, err = c.GetTransaction(ctx, "does-not-exist")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	require.NoError(t, c.Logout(ctx))
	assert.False(t, c.IsAuthenticated())
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, "127.0.0.1:0", http.NotFoundHandler()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
