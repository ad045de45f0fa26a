// Package retry provides bounded exponential backoff for flaky network
// calls.
package retry

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	DefaultAttempts  = 3
	DefaultBaseDelay = 1 * time.Second
	DefaultMaxDelay  = 30 * time.Second
	DefaultJitter    = 0.2
)

// Config holds retry settings.
type Config struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Jitter    float64
	// Retryable reports whether an error is worth another attempt.
	// Defaults to retrying everything; context errors always stop the loop.
	Retryable func(error) bool
}

// Do executes fn up to cfg.Attempts times with exponential backoff.
// Returns the last error if all attempts fail, or the context error if the
// caller is cancelled while waiting.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	cfg = cfg.withDefaults()
	var lastErr error

	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		if !cfg.Retryable(lastErr) || attempt == cfg.Attempts-1 {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoffDelay(cfg, attempt)):
		}
	}
	return lastErr
}

func backoffDelay(cfg Config, attempt int) time.Duration {
	delay := cfg.BaseDelay << min(attempt, 6)
	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	jitter := float64(delay) * cfg.Jitter * (rand.Float64() - 0.5)
	return time.Duration(float64(delay) + jitter)
}

func (c Config) withDefaults() Config {
	if c.Attempts <= 0 {
		c.Attempts = DefaultAttempts
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	if c.Jitter <= 0 {
		c.Jitter = DefaultJitter
	}
	if c.Retryable == nil {
		c.Retryable = func(error) bool { return true }
	}
	return c
}
