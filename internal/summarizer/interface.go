package summarizer

import "context"

// Client is a hosted text-completion capability. It is used identically for
// per-chunk and fusion calls, differing only in instructions and input.
type Client interface {
	Summarize(ctx context.Context, text, instructions string) (string, error)
}
