package transcript

import "strings"

// Source tags where a transcript came from.
type Source int

const (
	SourceCaptions Source = iota
	SourceSpeech
)

func (s Source) String() string {
	switch s {
	case SourceCaptions:
		return "captions"
	case SourceSpeech:
		return "speech-to-text"
	default:
		return "unknown"
	}
}

// Segment is one timed span of spoken text. Start and Duration are in
// seconds; speech-to-text output carries a single untimed segment.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Transcript is the ordered textual representation of a video's spoken
// content. Immutable once produced.
type Transcript struct {
	Segments []Segment
	Source   Source
}

// Text joins the segments, in order, into the full-text transcript.
func (t Transcript) Text() string {
	parts := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		if s := strings.TrimSpace(seg.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Empty reports whether the transcript carries no text at all.
func (t Transcript) Empty() bool {
	return t.Text() == ""
}
