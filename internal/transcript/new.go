package transcript

import (
	"github.com/sashabaranov/go-openai"

	"github.com/quangvinhtran/tubesum/internal/config"
	"github.com/quangvinhtran/tubesum/internal/logger"
	"github.com/quangvinhtran/tubesum/pkg/executor"
)

type implFetcher struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
	stt      *openai.Client
}

// New creates a Fetcher instance. The Whisper API client is only built when
// a key is available; the whisper-cpp backend never needs it.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	f := &implFetcher{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
	if cfg.Credentials.OpenAIKey != "" {
		f.stt = openai.NewClient(cfg.Credentials.OpenAIKey)
	}
	return f
}
