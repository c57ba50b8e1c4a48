package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe runs whisper on a 16kHz WAV file and returns the transcript text
func (p *implProcessor) transcribe(ctx context.Context, wavPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	p.logger.Info(ctx, "Starting transcription with %d threads: %s", p.cfg.Whisper.Threads, wavPath)

	// -otxt writes <prefix>.txt, -l forces the language to avoid hallucinated translations
	args := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if p.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", p.cfg.Whisper.Prompt)
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	defer p.cleanupTempFile(ctx, txtPath)

	data, err := p.fs.DownloadWithURL(ctx, txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	p.logger.Info(ctx, "Transcription completed: %s", txtPath)
	return string(data), nil
}
