package summarizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/quangvinhtran/tubesum/internal/config"
	"github.com/quangvinhtran/tubesum/internal/logger"
)

func TestNewMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantErr  string
	}{
		{"openai without key", config.ProviderOpenAI, "OPENAI_API_KEY"},
		{"gemini without key", config.ProviderGemini, "GEMINI_API_KEY"},
		{"unknown provider", "llamafarm", "unknown summarizer provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Summarizer.Provider = tt.provider
			_, err := New(cfg, logger.New("error"))
			if err == nil {
				t.Fatal("New() error = nil, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewWithCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Summarizer.Provider = config.ProviderOpenAI
	cfg.Summarizer.Model = "gpt-4o"
	cfg.Credentials.OpenAIKey = "sk-test"
	if _, err := New(cfg, logger.New("error")); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg = &config.Config{}
	cfg.Summarizer.Provider = config.ProviderGemini
	cfg.Summarizer.Model = "gemini-2.5-flash"
	cfg.Credentials.GeminiKeys = []string{"key-a", "key-b"}
	if _, err := New(cfg, logger.New("error")); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestRequestErrorFormatting(t *testing.T) {
	cause := errors.New("boom")

	segErr := &RequestError{Stage: "segment", Chunk: 2, Err: cause}
	if got := segErr.Error(); got != "summarize segment (chunk 2): boom" {
		t.Errorf("Error() = %q", got)
	}

	fusErr := &RequestError{Stage: "fusion", Chunk: -1, Err: cause}
	if got := fusErr.Error(); got != "summarize fusion: boom" {
		t.Errorf("Error() = %q", got)
	}

	if !errors.Is(segErr, cause) {
		t.Error("errors.Is() should unwrap to the cause")
	}
}

func TestFusionInstructionsTargetWords(t *testing.T) {
	got := FusionInstructions(120)
	if !strings.Contains(got, "120 words") {
		t.Errorf("FusionInstructions(120) = %q, want target word count included", got)
	}
}
