package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
					Language:   "en",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "no whisper is fine",
			config: Config{
				Paths: PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: false,
		},
		{
			name: "whisper binary without model",
			config: Config{
				Whisper: WhisperConfig{BinaryPath: "./whisper"},
				Paths:   PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
		{
			name: "negative sentence count",
			config: Config{
				Summary: SummaryConfig{SentenceCount: -2},
				Paths:   PathsConfig{Input: "in", Output: "out"},
			},
			wantErr: true,
		},
		{
			name: "negative concurrency",
			config: Config{
				Paths:       PathsConfig{Input: "in", Output: "out"},
				Performance: PerformanceConfig{MaxConcurrent: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Input: "in", Output: "out"}}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "english", cfg.Summary.Language)
	assert.Equal(t, 5, cfg.Summary.SentenceCount)
	assert.Equal(t, "data/archived", cfg.Paths.Archived)
	assert.Equal(t, "data/temp", cfg.Paths.Temp)
	assert.Equal(t, 2, cfg.Performance.MaxConcurrent)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.TranscriptionEnabled())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data/input", cfg.Paths.Input)
	assert.Equal(t, "english", cfg.Summary.Language)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
summary:
  language: "spanish"
  sentence_count: 3

whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
  language: "es"
  prompt: "test"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
  format: "json"

server:
  enabled: true
  addr: "127.0.0.1:9090"
  request_timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "spanish", cfg.Summary.Language)
	assert.Equal(t, 3, cfg.Summary.SentenceCount)
	assert.Equal(t, "models/test.bin", cfg.Whisper.ModelPath)
	assert.Equal(t, "data/input", cfg.Paths.Input)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.TranscriptionEnabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths:\n  input: in\n  output: out\n"), 0644))

	t.Setenv("RECAP_LANGUAGE", "french")
	t.Setenv("RECAP_SENTENCE_COUNT", "7")
	t.Setenv("RECAP_SERVER_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "french", cfg.Summary.Language)
	assert.Equal(t, 7, cfg.Summary.SentenceCount)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.True(t, cfg.Server.Enabled)

	t.Setenv("RECAP_SENTENCE_COUNT", "many")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths:\n  input: in\n  output: out\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// no .env file is fine
	_, err = Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RECAP_LANGUAGE=\"unterminated\n"), 0644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
}
