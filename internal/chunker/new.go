package chunker

import (
	"errors"

	"github.com/quangvinhtran/tubesum/internal/tokenizer"
)

// ErrInvalidBudget is returned when the tokens-per-chunk budget is not
// positive.
var ErrInvalidBudget = errors.New("max tokens per chunk must be positive")

type implChunker struct {
	tok       tokenizer.Tokenizer
	maxTokens int
}

// New creates a Chunker that keeps every chunk within maxTokens tokens as
// measured by tok.
func New(tok tokenizer.Tokenizer, maxTokens int) (Chunker, error) {
	if maxTokens <= 0 {
		return nil, ErrInvalidBudget
	}
	return &implChunker{
		tok:       tok,
		maxTokens: maxTokens,
	}, nil
}
