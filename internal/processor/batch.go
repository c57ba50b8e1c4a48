package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
)

// ProcessDir processes every supported file in dir, at most
// performance.max_concurrent at a time. Failures are logged and joined.
func (p *implProcessor) ProcessDir(ctx context.Context, dir string) error {
	objects, err := p.fs.List(ctx, dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, obj := range objects {
		if obj.IsDir() || !p.Supported(obj.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, obj.Name()))
	}

	if len(files) == 0 {
		p.logger.Info(ctx, "No supported files found in %s", dir)
		return nil
	}

	p.logger.Info(ctx, "Found %d files to summarize", len(files))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		errs      []error
		started   int
		succeeded int
	)

	for _, path := range files {
		if err := p.sem.acquire(ctx); err != nil {
			errs = append(errs, fmt.Errorf("batch cancelled: %w", err))
			break
		}
		started++

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer p.sem.release()

			err := p.Process(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				errs = append(errs, err)
				return
			}
			succeeded++
		}(path)
	}

	wg.Wait()

	p.logger.Info(ctx, "Batch complete: %d success, %d failed, %d skipped",
		succeeded, started-succeeded, len(files)-started)
	return errors.Join(errs...)
}
