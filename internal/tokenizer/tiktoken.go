package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

type implTiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken returns a Tokenizer backed by the BPE encoding of the given
// model. Models unknown to tiktoken fall back to cl100k_base, which is
// close enough for budgeting chunks.
func NewTiktoken(model string) (Tokenizer, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("load token encoding: %w", err)
		}
	}
	return &implTiktoken{enc: enc}, nil
}

func (t *implTiktoken) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

func (t *implTiktoken) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

func (t *implTiktoken) Decode(ids []int) string {
	return t.enc.Decode(ids)
}
