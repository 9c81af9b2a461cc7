package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &strings.Builder{}
	root := NewRootCmd()
	root.SetOut(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_LoginDashboardStatusLogout(t *testing.T) {
	token := signedToken(t, "demo", time.Now().Add(time.Hour))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": token,
			"token_type":   "bearer",
			"user_info":    map[string]any{"username": "demo"},
		})
	})
	mux.HandleFunc("/api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"total_balance": 42.5})
	})
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Successfully logged out"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := fmt.Sprintf("mem://localhost/cli/%d", time.Now().UnixNano())
	common := []string{"--base-url", srv.URL, "--token-store", store}

	out, err := execute(t, append([]string{"login", "--username", "demo", "--password", "pw"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as demo")

	out, err = execute(t, append([]string{"dashboard"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"total_balance": 42.5`)

	out, err = execute(t, append([]string{"status"}, common...)...)
	require.NoError(t, err)
	var st tokenStatus
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.True(t, st.Authenticated)
	assert.Equal(t, "demo", st.Subject)
	assert.False(t, st.Expired)
	assert.Equal(t, srv.URL, st.BaseURL)

	out, err = execute(t, append([]string{"logout"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	_, err = execute(t, append([]string{"dashboard"}, common...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestCLI_DevModeServesMockData(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	t.Setenv("MINTELLI_RETRIES", "0")
	out, err := execute(t, "get", "api/dashboard", "--base-url", url, "--dev-mode", "--token-store", "mem://localhost/cli/dev")
	require.NoError(t, err)
	assert.Contains(t, out, "total_balance")
}

func TestCLI_RequiredFlags(t *testing.T) {
	_, err := execute(t, "login", "--username", "demo", "--token-store", "mem://localhost/cli/flags")
	require.Error(t, err)

	_, err = execute(t, "chat", "--token-store", "mem://localhost/cli/flags")
	require.Error(t, err)
}

func TestDescribeToken(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	st := describeToken("http://x", false, "", now)
	assert.False(t, st.Authenticated)

	st = describeToken("http://x", false, "opaque-token", now)
	assert.True(t, st.Authenticated)
	assert.Empty(t, st.Subject)
	assert.Nil(t, st.ExpiresAt)

	st = describeToken("http://x", true, signedToken(t, "alice", now.Add(-time.Minute)), now)
	assert.Equal(t, "alice", st.Subject)
	require.NotNil(t, st.ExpiresAt)
	assert.True(t, st.Expired)
	assert.True(t, st.DevMode)
}
