package processor

import (
	"context"
	"errors"
)

var (
	// ErrUnsupportedFile is returned for extensions the pipeline does not handle
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrNoSpeech is returned when a transcript turns out empty
	ErrNoSpeech = errors.New("no speech detected")
	// ErrTranscriptionDisabled is returned for audio when no whisper binary is configured
	ErrTranscriptionDisabled = errors.New("transcription is not configured")
)

// Processor turns transcripts and recordings into summary reports
type Processor interface {
	// Process summarizes one file and writes <name>.md and <name>.docx
	Process(ctx context.Context, path string) error
	// ProcessDir processes every supported file in dir with bounded concurrency
	ProcessDir(ctx context.Context, dir string) error
	// Supported reports whether path has an extension Process accepts
	Supported(path string) bool
}
