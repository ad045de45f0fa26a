package transcript

import (
	"context"
	"errors"
)

// ErrNoCaptions is the explicit not-available signal from the caption
// source. Only this error triggers the speech-to-text fallback; any other
// caption failure is a real error and is surfaced as-is.
var ErrNoCaptions = errors.New("no captions available")

// ErrUnavailable means captions are missing and the fallback transcription
// failed too.
var ErrUnavailable = errors.New("transcript unavailable")

// Fetcher produces a transcript for a video identifier, captions first with
// a speech-to-text fallback.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (Transcript, error)
}
