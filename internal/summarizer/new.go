package summarizer

import (
	"fmt"

	"github.com/quangvinhtran/tubesum/internal/config"
	"github.com/quangvinhtran/tubesum/internal/logger"
)

// New creates the Client for the configured provider. Credentials must
// already be present in cfg; a missing key is reported here, before any
// transcript work is wasted.
func New(cfg *config.Config, log logger.Logger) (Client, error) {
	switch cfg.Summarizer.Provider {
	case config.ProviderOpenAI:
		if cfg.Credentials.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return newOpenAI(cfg.Credentials.OpenAIKey, cfg.Summarizer.Model), nil

	case config.ProviderGemini:
		if len(cfg.Credentials.GeminiKeys) == 0 {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return newGemini(cfg.Credentials.GeminiKeys, cfg.Summarizer.Model, log), nil

	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}
