package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quangvinhtran/tubesum/internal/chunker"
	"github.com/quangvinhtran/tubesum/internal/config"
	"github.com/quangvinhtran/tubesum/internal/logger"
	"github.com/quangvinhtran/tubesum/internal/summarizer"
)

type runeTok struct{}

func (runeTok) Count(text string) int { return len([]rune(text)) }

func (runeTok) Encode(text string) []int {
	runes := []rune(text)
	ids := make([]int, len(runes))
	for i, r := range runes {
		ids[i] = int(r)
	}
	return ids
}

func (runeTok) Decode(ids []int) string {
	runes := make([]rune, len(ids))
	for i, id := range ids {
		runes[i] = rune(id)
	}
	return string(runes)
}

type recordedCall struct {
	text         string
	instructions string
}

// fakeClient records every call and answers segments with "sum(<text>)".
// Optional per-text delays let tests force out-of-order completion.
type fakeClient struct {
	mu     sync.Mutex
	calls  []recordedCall
	delays map[string]time.Duration
	failOn string
}

func (f *fakeClient) Summarize(ctx context.Context, text, instructions string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{text: text, instructions: instructions})
	delay := f.delays[strings.TrimSpace(text)]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return "", errors.New("boom")
	}
	if instructions == summarizer.SegmentInstructions {
		return "sum(" + strings.TrimSpace(text) + ")", nil
	}
	return "final summary", nil
}

func (f *fakeClient) segmentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.instructions == summarizer.SegmentInstructions {
			n++
		}
	}
	return n
}

func (f *fakeClient) fusionCalls() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedCall
	for _, c := range f.calls {
		if c.instructions != summarizer.SegmentInstructions {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Summarizer.MaxRetries = 1
	cfg.Pipeline.Concurrency = 3
	cfg.Pipeline.RequestTimeoutSeconds = 5
	return cfg
}

func newTestPipeline(t *testing.T, cfg *config.Config, client summarizer.Client, budget int, opts ...Option) Pipeline {
	t.Helper()
	chk, err := chunker.New(runeTok{}, budget)
	if err != nil {
		t.Fatal(err)
	}
	return New(cfg, client, chk, logger.New("error"), opts...)
}

func TestRunEmptyInput(t *testing.T) {
	client := &fakeClient{}
	p := newTestPipeline(t, testConfig(t), client, 100)

	for _, input := range []string{"", "   \n\t "} {
		_, err := p.Run(context.Background(), input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Run(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
	if client.totalCalls() != 0 {
		t.Errorf("summarizer called %d times for empty input, want 0", client.totalCalls())
	}
}

func TestRunSingleChunkStillFuses(t *testing.T) {
	client := &fakeClient{}
	p := newTestPipeline(t, testConfig(t), client, 3000)

	out, err := p.Run(context.Background(), "A short talk. Nothing more.")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "final summary" {
		t.Errorf("Run() = %q, want fusion output", out)
	}
	if got := client.segmentCalls(); got != 1 {
		t.Errorf("segment calls = %d, want 1", got)
	}
	if got := len(client.fusionCalls()); got != 1 {
		t.Errorf("fusion calls = %d, want 1", got)
	}
}

func TestRunThreeChunksOrderedFusion(t *testing.T) {
	transcript := "alpha. bravo. charlie."
	// First chunk completes last, last completes first.
	client := &fakeClient{delays: map[string]time.Duration{
		"alpha.":   30 * time.Millisecond,
		"bravo.":   15 * time.Millisecond,
		"charlie.": 0,
	}}

	var mu sync.Mutex
	var progress []int
	p := newTestPipeline(t, testConfig(t), client, 8, WithProgress(func(done, total int) {
		mu.Lock()
		progress = append(progress, done)
		mu.Unlock()
		if total != 3 {
			t.Errorf("progress total = %d, want 3", total)
		}
	}))

	out, err := p.Run(context.Background(), transcript)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out == "" {
		t.Error("Run() returned empty summary")
	}
	if got := client.segmentCalls(); got != 3 {
		t.Errorf("segment calls = %d, want 3", got)
	}

	fusions := client.fusionCalls()
	if len(fusions) != 1 {
		t.Fatalf("fusion calls = %d, want 1", len(fusions))
	}
	want := "- sum(alpha.)\n- sum(bravo.)\n- sum(charlie.)"
	if fusions[0].text != want {
		t.Errorf("fusion input assembled out of order\ngot:  %q\nwant: %q", fusions[0].text, want)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(progress) != 3 || progress[2] != 3 {
		t.Errorf("progress = %v, want three increments ending at 3", progress)
	}
}

func TestRunFailingChunkAbortsBeforeFusion(t *testing.T) {
	client := &fakeClient{failOn: "bravo"}
	p := newTestPipeline(t, testConfig(t), client, 8)

	_, err := p.Run(context.Background(), "alpha. bravo. charlie.")
	if err == nil {
		t.Fatal("Run() error = nil, want failure")
	}

	var reqErr *summarizer.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Run() error = %T (%v), want *summarizer.RequestError", err, err)
	}
	if reqErr.Stage != "segment" {
		t.Errorf("Stage = %q, want segment", reqErr.Stage)
	}
	if got := len(client.fusionCalls()); got != 0 {
		t.Errorf("fusion calls = %d, want 0 after chunk failure", got)
	}
}

func TestRunCancelledMidFlight(t *testing.T) {
	client := &fakeClient{delays: map[string]time.Duration{
		"alpha.":   time.Second,
		"bravo.":   time.Second,
		"charlie.": time.Second,
	}}
	p := newTestPipeline(t, testConfig(t), client, 8)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := p.Run(ctx, "alpha. bravo. charlie.")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if got := len(client.fusionCalls()); got != 0 {
		t.Errorf("fusion calls = %d, want 0 after cancellation", got)
	}
}
