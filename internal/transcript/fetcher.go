package transcript

import (
	"context"
	"errors"
	"fmt"
)

// Fetch tries the caption track first and falls back to downloading and
// transcribing the audio only on the explicit no-captions signal.
func (f *implFetcher) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	t, err := f.fromCaptions(ctx, videoID)
	if err == nil {
		f.logger.Info(ctx, "Transcript for %s acquired from captions (%d segments)", videoID, len(t.Segments))
		return t, nil
	}
	if !errors.Is(err, ErrNoCaptions) {
		return Transcript{}, fmt.Errorf("fetch captions: %w", err)
	}

	f.logger.Info(ctx, "No captions for %s, falling back to speech-to-text", videoID)

	t, sttErr := f.fromSpeech(ctx, videoID)
	if sttErr != nil {
		return Transcript{}, fmt.Errorf("%w: no captions and transcription failed: %v", ErrUnavailable, sttErr)
	}
	f.logger.Info(ctx, "Transcript for %s acquired from speech-to-text", videoID)
	return t, nil
}
