package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/recap/internal/logger"
)

// DefaultSettleDelay is how long a new file is left alone before it is handled,
// so writers have a chance to finish
const DefaultSettleDelay = 500 * time.Millisecond

type Option func(*implWatcher)

// WithSettleDelay overrides DefaultSettleDelay
func WithSettleDelay(d time.Duration) Option {
	return func(w *implWatcher) {
		w.settleDelay = d
	}
}

// New creates a new Watcher instance with concurrency control.
// A nil filter accepts every file.
func New(inputDir string, handler EventHandler, filter Filter, log logger.Logger, maxConcurrent int, opts ...Option) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}

	w := &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		filter:        filter,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settleDelay:   DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}
