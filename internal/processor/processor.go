package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Process orchestrates transcript extraction, summarization and report output
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()

	kind := classify(path)
	if kind == kindUnknown {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	p.logger.Info(ctx, "Processing %s: %s", kind, path)

	// Step 1: get plain text
	text, err := p.readText(ctx, path, kind)
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		p.logger.Warn(ctx, "No speech detected in %s", path)
		if err := p.moveToArchived(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to archive %s: %v", path, err)
		}
		return fmt.Errorf("%w: %s", ErrNoSpeech, path)
	}

	// Step 2: summarize
	result, err := p.summarizer.Rank(text, p.cfg.Summary.Language, p.cfg.Summary.SentenceCount)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	p.logger.Debug(ctx, "Ranked %d sentences in %d iterations (converged=%v)",
		result.Total, result.Iterations, result.Converged)

	r := report{
		Title:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Created:    startTime,
		Source:     filepath.Base(path),
		Transcript: text,
		Result:     result,
	}

	// Step 3: write outputs
	mdPath, err := p.writeMarkdown(ctx, r)
	if err != nil {
		return err
	}

	docxPath, err := p.writeDocx(r)
	if err != nil {
		p.logger.Warn(ctx, "Failed to write docx for %s: %v", path, err)
	}

	// Step 4: move original out of the input folder
	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Summary written: %s %s (%d/%d sentences, %s)",
		mdPath, docxPath, len(result.Sentences), result.Total, time.Since(startTime))

	return nil
}

func (p *implProcessor) readText(ctx context.Context, path string, kind fileKind) (string, error) {
	switch kind {
	case kindAudio:
		if !p.cfg.TranscriptionEnabled() {
			return "", fmt.Errorf("%w: %s", ErrTranscriptionDisabled, path)
		}

		wavPath, err := p.extractAudio(ctx, path)
		if err != nil {
			return "", fmt.Errorf("extract audio: %w", err)
		}
		defer p.cleanupTempFile(ctx, wavPath)

		text, err := p.transcribe(ctx, wavPath)
		if err != nil {
			return "", fmt.Errorf("transcribe: %w", err)
		}
		return text, nil

	default:
		data, err := p.fs.DownloadWithURL(ctx, path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", kind, err)
		}
		if kind == kindSubtitle {
			return subtitleText(string(data)), nil
		}
		return string(data), nil
	}
}
