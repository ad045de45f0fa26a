package transcript

import "testing"

func TestCleanSubtitleSRT(t *testing.T) {
	srt := `1
00:00:01,000 --> 00:00:04,000
Hello and welcome back.

2
00:00:04,000 --> 00:00:07,500
Today we talk about Go.

3
00:00:07,500 --> 00:00:09,000
Today we talk about Go.
`
	got := CleanSubtitle(srt)
	want := "Hello and welcome back. Today we talk about Go."
	if got != want {
		t.Errorf("CleanSubtitle() = %q, want %q", got, want)
	}
}

func TestCleanSubtitleVTT(t *testing.T) {
	vtt := `WEBVTT

NOTE generated captions

00:00:01.000 --> 00:00:04.000
First line here.

00:00:04.000 --> 00:00:06.000
Second line here.
`
	got := CleanSubtitle(vtt)
	want := "First line here. Second line here."
	if got != want {
		t.Errorf("CleanSubtitle() = %q, want %q", got, want)
	}
}

func TestCleanSubtitleEmpty(t *testing.T) {
	if got := CleanSubtitle(""); got != "" {
		t.Errorf("CleanSubtitle(\"\") = %q, want empty", got)
	}
}

func TestTranscriptText(t *testing.T) {
	tr := Transcript{
		Segments: []Segment{
			{Text: "one", Start: 0},
			{Text: "  ", Start: 1},
			{Text: "two ", Start: 2},
			{Text: "three", Start: 3},
		},
		Source: SourceCaptions,
	}
	if got := tr.Text(); got != "one two three" {
		t.Errorf("Text() = %q, want %q", got, "one two three")
	}
	if tr.Empty() {
		t.Error("Empty() = true for non-empty transcript")
	}
	if !(Transcript{}).Empty() {
		t.Error("Empty() = false for zero transcript")
	}
}
