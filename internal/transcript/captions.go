package transcript

import (
	"context"
	"fmt"
	"strings"

	caption "github.com/lincaiyong/youtube-caption"
)

// fromCaptions downloads the video's caption track. An empty track is the
// explicit ErrNoCaptions signal; transport errors are returned as-is so
// they are never mistaken for "no captions".
func (f *implFetcher) fromCaptions(ctx context.Context, videoID string) (Transcript, error) {
	f.logger.Debug(ctx, "Downloading captions for %s (preferred languages: %s)",
		videoID, strings.Join(f.cfg.YouTube.Languages, ", "))

	captions, err := caption.Download(videoID)
	if err != nil {
		return Transcript{}, fmt.Errorf("download captions: %w", err)
	}

	texts := captions.GetSubtitleText()
	segments := make([]Segment, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:  t.Text,
			Start: t.StartTime,
		})
	}
	if len(segments) == 0 {
		return Transcript{}, ErrNoCaptions
	}

	return Transcript{Segments: segments, Source: SourceCaptions}, nil
}
