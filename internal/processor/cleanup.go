package processor

import (
	"context"
	"fmt"
	"path/filepath"
)

// moveToArchived moves a processed input out of the watched folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Archiving: %s -> %s", path, dest)

	if err := p.fs.Move(ctx, path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, path string) {
	if err := p.fs.Delete(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
