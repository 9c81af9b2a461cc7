// Package tokenstore holds the bearer token used for outgoing requests and
// mirrors it into durable storage so it survives restarts.
//
// The in-memory value is authoritative. Storage failures are logged and never
// returned: a broken disk must not stop the client from working for the
// lifetime of the process.
package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Key is the storage key of the persisted token.
const Key = "financial-ai-auth-token"

const storageTimeout = 5 * time.Second

// Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex // guards token for readers
	token string

	// persistMu spans the in-memory update and the storage call of Load, Save
	// and Clear, so the last token written to memory is also the last one persisted.
	persistMu sync.Mutex
	storage   Storage
}

// New returns an empty Store backed by storage. A nil storage keeps the token in memory only.
func New(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load reads the persisted token, if any, into memory.
func (s *Store) Load() {
	if s.storage == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	token, ok, err := s.storage.Get(ctx, Key)
	if err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("failed to load auth token")
		return
	}
	if !ok || token == "" {
		return
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	log.Debug().Str("key", Key).Msg("auth token loaded")
}

// Save replaces the token and persists it.
func (s *Store) Save(token string) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.storage == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := s.storage.Set(ctx, Key, token); err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("failed to persist auth token")
	}
}

// Clear drops the token from memory and storage. Calling it repeatedly is harmless.
func (s *Store) Clear() {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.storage == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := s.storage.Delete(ctx, Key); err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("failed to remove auth token")
	}
}

// Token returns the current token or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HasToken reports whether a token is set.
func (s *Store) HasToken() bool {
	return s.Token() != ""
}
