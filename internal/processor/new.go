package processor

import (
	"github.com/viant/afs"

	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/internal/summarizer"
	"github.com/nguyentantai21042004/recap/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	executor   executor.Executor
	summarizer summarizer.Summarizer
	fs         afs.Service
	logger     logger.Logger
	sem        *semaphore
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		executor:   exec,
		summarizer: sum,
		fs:         afs.New(),
		logger:     log,
		sem:        newSemaphore(cfg.Performance.MaxConcurrent),
	}
}
