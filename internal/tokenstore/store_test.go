package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStorage fails every operation.
type brokenStorage struct{ calls int }

func (b *brokenStorage) Get(context.Context, string) (string, bool, error) {
	b.calls++
	return "", false, errors.New("disk on fire")
}
func (b *brokenStorage) Set(context.Context, string, string) error {
	b.calls++
	return errors.New("disk on fire")
}
func (b *brokenStorage) Delete(context.Context, string) error {
	b.calls++
	return errors.New("disk on fire")
}

// gatedStorage is an in-memory Storage whose Set blocks until release is closed.
type gatedStorage struct {
	mu      sync.Mutex
	data    map[string]string
	entered chan struct{}
	release chan struct{}
}

func newGatedStorage() *gatedStorage {
	return &gatedStorage{
		data:    map[string]string{},
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (g *gatedStorage) Get(_ context.Context, key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.data[key]
	return v, ok, nil
}

func (g *gatedStorage) Set(_ context.Context, key, value string) error {
	g.entered <- struct{}{}
	<-g.release
	g.mu.Lock()
	defer g.mu.Unlock()
	g.data[key] = value
	return nil
}

func (g *gatedStorage) Delete(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.data, key)
	return nil
}

func memURL(t *testing.T) string {
	return fmt.Sprintf("mem://localhost/tokenstore/%s/%d", t.Name(), time.Now().UnixNano())
}

func TestStore_SaveSurvivesRestart(t *testing.T) {
	storage := NewAFSStorage(memURL(t))

	first := New(storage)
	first.Save("abc")
	assert.Equal(t, "abc", first.Token())

	restarted := New(NewAFSStorage(storage.baseURL))
	assert.False(t, restarted.HasToken())
	restarted.Load()
	assert.Equal(t, "abc", restarted.Token())
}

func TestStore_ClearRemovesPersistedToken(t *testing.T) {
	storage := NewAFSStorage(memURL(t))
	s := New(storage)
	s.Save("abc")
	s.Clear()
	assert.Empty(t, s.Token())

	_, ok, err := storage.Get(context.Background(), Key)
	require.NoError(t, err)
	assert.False(t, ok)

	// clearing twice is fine
	s.Clear()
	assert.False(t, s.HasToken())
}

func TestStore_LoadWithNothingStored(t *testing.T) {
	s := New(NewAFSStorage(memURL(t)))
	s.Load()
	assert.False(t, s.HasToken())
}

func TestStore_StorageFailuresAreNotFatal(t *testing.T) {
	b := &brokenStorage{}
	s := New(b)

	s.Load()
	assert.False(t, s.HasToken())

	s.Save("tok")
	assert.Equal(t, "tok", s.Token(), "in-memory token must update even when persisting fails")

	s.Clear()
	assert.False(t, s.HasToken())
	assert.Equal(t, 3, b.calls)
}

func TestStore_NilStorage(t *testing.T) {
	s := New(nil)
	s.Load()
	s.Save("x")
	assert.Equal(t, "x", s.Token())
	s.Clear()
	assert.Empty(t, s.Token())
}

func TestStore_ConcurrentClear(t *testing.T) {
	s := New(nil)
	s.Save("tok")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Token()
			s.Clear()
		}()
	}
	wg.Wait()
	assert.False(t, s.HasToken())
}

func TestAFSStorage_DeleteMissing(t *testing.T) {
	storage := NewAFSStorage(memURL(t))
	require.NoError(t, storage.Delete(context.Background(), "nope"))
}

func TestStore_ClearDuringSlowSaveWinsInStorage(t *testing.T) {
	g := newGatedStorage()
	s := New(g)

	saved := make(chan struct{})
	go func() {
		defer close(saved)
		s.Save("abc")
	}()
	<-g.entered

	cleared := make(chan struct{})
	go func() {
		defer close(cleared)
		s.Clear()
	}()

	select {
	case <-cleared:
		t.Fatal("Clear finished while Save was still persisting")
	case <-time.After(50 * time.Millisecond):
	}

	close(g.release)
	<-saved
	<-cleared

	assert.Empty(t, s.Token())
	restarted := New(g)
	restarted.Load()
	assert.Empty(t, restarted.Token(), "persisted token must match the in-memory token")
}
