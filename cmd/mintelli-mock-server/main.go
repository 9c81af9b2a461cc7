package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mintellifunds/mintellifunds/client/internal/config"
	"github.com/mintellifunds/mintellifunds/client/internal/mock"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("mock server failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "mintelli-mock-server",
		Short: "Serve the canned dashboard data over HTTP for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger()

			p, err := mock.New()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, newRouter(p))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8000", "Listen address")
	return cmd
}

func serve(ctx context.Context, addr string, h http.Handler) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("mock server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down mock server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctxShutdown)
}

func newRouter(p *mock.Provider) *mux.Router {
	root := mux.NewRouter()
	root.Use(logRequests)

	root.HandleFunc("/api/auth/login", login).Methods(http.MethodPost)
	root.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
	}).Methods(http.MethodPost)
	root.PathPrefix("/api/").HandlerFunc(serveMock(p))

	return root
}

func login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "username and password are required"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  "mock-" + uuid.NewString(),
		"refresh_token": "mock-refresh-" + uuid.NewString(),
		"token_type":    "bearer",
		"expires_in":    3600,
		"user_info": map[string]any{
			"user_id":     "mock-user",
			"username":    req.Username,
			"permissions": []string{"read", "write"},
			"is_active":   true,
		},
	})
}

// serveMock answers any method on a known path with its canned document.
func serveMock(p *mock.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !p.Has(r.URL.Path) {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Mock data not available for " + r.URL.Path})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(p.Body(r.URL.Path))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Dur("elapsed", time.Since(start)).Msg("mock request")
	})
}
