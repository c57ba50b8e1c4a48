package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/recap/internal/api"
	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/language"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/internal/processor"
	"github.com/nguyentantai21042004/recap/internal/summarizer"
	"github.com/nguyentantai21042004/recap/internal/watcher"
	"github.com/nguyentantai21042004/recap/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Recap Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, %d CPU cores", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	languages, err := language.NewFromFile(cfg.Summary.LanguagesFile)
	if err != nil {
		log.Error(ctx, "Failed to load languages: %v", err)
		os.Exit(1)
	}
	if !languages.Supported(cfg.Summary.Language) {
		log.Warn(ctx, "Language %q has no profile, summaries will use generic rules", cfg.Summary.Language)
	}

	sum := summarizer.New(languages)
	exec := executor.New()

	if cfg.TranscriptionEnabled() {
		for _, bin := range []string{cfg.Whisper.BinaryPath, cfg.FFmpeg.BinaryPath} {
			if !exec.Available(bin) {
				log.Warn(ctx, "%s not found in PATH, audio files will fail", bin)
			}
		}
	} else {
		log.Info(ctx, "Whisper not configured, audio files will be rejected")
	}

	proc := processor.New(cfg, exec, sum, log)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 2)

	w, err := startWatching(ctx, cfg, proc, log, errChan)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	var server *http.Server
	if cfg.Server.Enabled {
		handler := api.NewHandler(log, sum, languages, cfg)
		server = &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           http.TimeoutHandler(api.NewRouter(handler), cfg.Server.RequestTimeout, "request timed out"),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			log.Info(ctx, "HTTP API listening on %s", cfg.Server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("http server: %w", err)
			}
		}()
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Recap Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Summary: %s, %d sentences", cfg.Summary.Language, cfg.Summary.SentenceCount)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "%v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")

	if server != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn(ctx, "HTTP shutdown: %v", err)
		}
		stop()
	}

	cancel()

	log.Info(context.Background(), "Recap Pipeline stopped")
}

// startWatching registers the input directory with a watcher before the
// backlog already sitting there is processed, so files dropped in while the
// backlog runs still raise events
func startWatching(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger, errChan chan<- error) (watcher.Watcher, error) {
	w, err := watcher.New(cfg.Paths.Input, proc.Process, proc.Supported, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("watcher: %w", err)
		}
	}()

	go func() {
		if err := proc.ProcessDir(ctx, cfg.Paths.Input); err != nil {
			log.Warn(ctx, "Backlog finished with errors: %v", err)
		}
	}()

	return w, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
