package pipeline

import (
	"time"

	"github.com/quangvinhtran/tubesum/internal/chunker"
	"github.com/quangvinhtran/tubesum/internal/config"
	"github.com/quangvinhtran/tubesum/internal/logger"
	"github.com/quangvinhtran/tubesum/internal/summarizer"
)

type implPipeline struct {
	client         summarizer.Client
	chunker        chunker.Chunker
	logger         logger.Logger
	concurrency    int
	requestTimeout time.Duration
	targetWords    int
	maxRetries     int
	retryDelay     time.Duration
	onChunkDone    func(done, total int)
}

// Option customizes Pipeline creation
type Option func(*implPipeline)

// WithProgress registers a callback invoked after each per-chunk summary
// completes. Calls are serialized.
func WithProgress(fn func(done, total int)) Option {
	return func(p *implPipeline) {
		p.onChunkDone = fn
	}
}

// New creates a Pipeline instance
func New(cfg *config.Config, client summarizer.Client, chk chunker.Chunker, log logger.Logger, opts ...Option) Pipeline {
	p := &implPipeline{
		client:         client,
		chunker:        chk,
		logger:         log,
		concurrency:    cfg.Pipeline.Concurrency,
		requestTimeout: cfg.RequestTimeout(),
		targetWords:    cfg.Summarizer.TargetWords,
		maxRetries:     cfg.Summarizer.MaxRetries,
		retryDelay:     cfg.RetryDelay(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
