package config

import (
	"fmt"
	"time"
)

type Config struct {
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Chunker     ChunkerConfig     `yaml:"chunker"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Watch       WatchConfig       `yaml:"watch"`

	// Credentials come from the environment, never from the yaml file.
	Credentials Credentials `yaml:"-"`
}

type YouTubeConfig struct {
	Languages []string `yaml:"languages"`
	YtdlpPath string   `yaml:"ytdlp_path"`
}

type TranscriberConfig struct {
	Backend           string `yaml:"backend"`
	WhisperModelPath  string `yaml:"whisper_model_path"`
	WhisperBinaryPath string `yaml:"whisper_binary_path"`
	Language          string `yaml:"language"`
	Threads           int    `yaml:"threads"`
}

type SummarizerConfig struct {
	Provider          string `yaml:"provider"`
	Model             string `yaml:"model"`
	TargetWords       int    `yaml:"target_words"`
	MaxRetries        int    `yaml:"max_retries"`
	RetryDelaySeconds int    `yaml:"retry_delay_seconds"`
}

type ChunkerConfig struct {
	MaxTokens int `yaml:"max_tokens"`
}

type PipelineConfig struct {
	Concurrency           int `yaml:"concurrency"`
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type Credentials struct {
	OpenAIKey  string
	GeminiKeys []string
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	BackendOpenAI     = "openai"
	BackendWhisperCpp = "whisper-cpp"
)

func (c *Config) Validate() error {
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOpenAI
	}
	switch c.Summarizer.Provider {
	case ProviderOpenAI:
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gpt-4o"
		}
	case ProviderGemini:
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("summarizer.provider must be %q or %q", ProviderOpenAI, ProviderGemini)
	}

	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendOpenAI
	}
	switch c.Transcriber.Backend {
	case BackendOpenAI:
	case BackendWhisperCpp:
		if c.Transcriber.WhisperModelPath == "" {
			return fmt.Errorf("transcriber.whisper_model_path is required for the whisper-cpp backend")
		}
		if c.Transcriber.WhisperBinaryPath == "" {
			return fmt.Errorf("transcriber.whisper_binary_path is required for the whisper-cpp backend")
		}
	default:
		return fmt.Errorf("transcriber.backend must be %q or %q", BackendOpenAI, BackendWhisperCpp)
	}

	if c.Chunker.MaxTokens < 0 {
		return fmt.Errorf("chunker.max_tokens must be positive")
	}
	if c.Summarizer.TargetWords < 0 {
		return fmt.Errorf("summarizer.target_words must be positive")
	}
	if c.Pipeline.Concurrency < 0 {
		return fmt.Errorf("pipeline.concurrency must be positive")
	}

	if len(c.YouTube.Languages) == 0 {
		c.YouTube.Languages = []string{"en", "en-US"}
	}
	if c.YouTube.YtdlpPath == "" {
		c.YouTube.YtdlpPath = "yt-dlp"
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "en"
	}
	if c.Transcriber.Threads == 0 {
		c.Transcriber.Threads = 8
	}
	if c.Summarizer.TargetWords == 0 {
		c.Summarizer.TargetWords = 120
	}
	if c.Summarizer.MaxRetries == 0 {
		c.Summarizer.MaxRetries = 3
	}
	if c.Summarizer.RetryDelaySeconds == 0 {
		c.Summarizer.RetryDelaySeconds = 1
	}
	if c.Chunker.MaxTokens == 0 {
		c.Chunker.MaxTokens = 3000
	}
	if c.Pipeline.Concurrency == 0 {
		c.Pipeline.Concurrency = 4
	}
	if c.Pipeline.RequestTimeoutSeconds == 0 {
		c.Pipeline.RequestTimeoutSeconds = 120
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// RequestTimeout is the per-call deadline for summarization requests.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Pipeline.RequestTimeoutSeconds) * time.Second
}

// RetryDelay is the base delay between summarization retries.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Summarizer.RetryDelaySeconds) * time.Second
}
