package pipeline

import (
	"context"
	"errors"
)

// ErrEmptyInput means the transcript carried no text; the summarizer is
// never called in that case.
var ErrEmptyInput = errors.New("transcript is empty")

// Pipeline turns a full transcript into one final summary via concurrent
// per-chunk summaries and a single fusion call.
type Pipeline interface {
	Run(ctx context.Context, transcript string) (string, error)
}
