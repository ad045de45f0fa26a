package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid whisper-cpp backend",
			config: Config{
				Transcriber: TranscriberConfig{
					Backend:           BackendWhisperCpp,
					WhisperModelPath:  "models/ggml-base.en.bin",
					WhisperBinaryPath: "./whisper-cli",
				},
			},
			wantErr: false,
		},
		{
			name: "whisper-cpp backend without model path",
			config: Config{
				Transcriber: TranscriberConfig{
					Backend:           BackendWhisperCpp,
					WhisperBinaryPath: "./whisper-cli",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Summarizer: SummarizerConfig{Provider: "anthropic"},
			},
			wantErr: true,
		},
		{
			name: "unknown transcriber backend",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "deepgram"},
			},
			wantErr: true,
		},
		{
			name: "negative chunk budget",
			config: Config{
				Chunker: ChunkerConfig{MaxTokens: -1},
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
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Chunker.MaxTokens != 3000 {
		t.Errorf("MaxTokens = %d, want 3000", cfg.Chunker.MaxTokens)
	}
	if cfg.Summarizer.TargetWords != 120 {
		t.Errorf("TargetWords = %d, want 120", cfg.Summarizer.TargetWords)
	}
	if cfg.Summarizer.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want %q", cfg.Summarizer.Provider, ProviderOpenAI)
	}
	if cfg.Summarizer.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.Summarizer.Model)
	}
	if cfg.Pipeline.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Pipeline.Concurrency)
	}
	if cfg.YouTube.YtdlpPath != "yt-dlp" {
		t.Errorf("YtdlpPath = %q, want yt-dlp", cfg.YouTube.YtdlpPath)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
youtube:
  languages: ["en", "vi"]

summarizer:
  provider: "gemini"
  target_words: 80

chunker:
  max_tokens: 1500

pipeline:
  concurrency: 2

logging:
  level: "debug"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Summarizer.Provider != ProviderGemini {
		t.Errorf("Provider = %q, want %q", cfg.Summarizer.Provider, ProviderGemini)
	}
	if cfg.Summarizer.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini-2.5-flash", cfg.Summarizer.Model)
	}
	if cfg.Summarizer.TargetWords != 80 {
		t.Errorf("TargetWords = %d, want 80", cfg.Summarizer.TargetWords)
	}
	if cfg.Chunker.MaxTokens != 1500 {
		t.Errorf("MaxTokens = %d, want 1500", cfg.Chunker.MaxTokens)
	}
	if len(cfg.YouTube.Languages) != 2 || cfg.YouTube.Languages[1] != "vi" {
		t.Errorf("Languages = %v, want [en vi]", cfg.YouTube.Languages)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEYS", "key-a, key-b,")

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if cfg.Credentials.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q, want sk-test", cfg.Credentials.OpenAIKey)
	}
	if len(cfg.Credentials.GeminiKeys) != 2 || cfg.Credentials.GeminiKeys[1] != "key-b" {
		t.Errorf("GeminiKeys = %v, want [key-a key-b]", cfg.Credentials.GeminiKeys)
	}
}
