package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/recap/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	files []string
}

func (r *recorder) handle(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = append(r.files, filepath.Base(path))
	return nil
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.files...)
}

func onlyText(path string) bool {
	return strings.HasSuffix(path, ".txt")
}

func TestWatcherHandlesFilteredCreates(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	w, err := New(dir, rec.handle, onlyText, logger.NewNop(), 2, WithSettleDelay(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.png"), []byte("x"), 0644))

	require.Eventually(t, func() bool {
		return len(rec.seen()) == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"notes.txt"}, rec.seen())

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherWaitsForHandlers(t *testing.T) {
	dir := t.TempDir()
	started := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	var mu sync.Mutex

	handler := func(ctx context.Context, path string) error {
		close(started)
		<-release
		mu.Lock()
		finished = true
		mu.Unlock()
		return errors.New("ignored")
	}

	w, err := New(dir, handler, nil, logger.NewNop(), 1, WithSettleDelay(0))
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0644))

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("handler never started")
	}

	cancel()
	select {
	case <-done:
		t.Fatal("Start returned before the handler finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, finished)
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), func(context.Context, string) error { return nil }, nil, logger.NewNop(), 1)
	assert.Error(t, err)
}
