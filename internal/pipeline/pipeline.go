package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/quangvinhtran/tubesum/internal/chunker"
	"github.com/quangvinhtran/tubesum/internal/retry"
	"github.com/quangvinhtran/tubesum/internal/summarizer"
)

// Run drives one summarization: chunk the transcript, summarize every chunk
// concurrently, then fuse the per-chunk summaries (in original chunk order)
// into a single paragraph. A chunk that keeps failing aborts the whole run;
// a summary silently missing part of the video is worse than an error.
func (p *implPipeline) Run(ctx context.Context, transcript string) (string, error) {
	r := newRun(p.logger)

	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyInput
	}

	chunks, err := p.chunker.Split(transcript)
	if err != nil {
		return "", fmt.Errorf("chunk transcript: %w", err)
	}
	if len(chunks) == 0 {
		return "", ErrEmptyInput
	}
	r.to(ctx, stateChunkingDone)
	p.logger.Info(ctx, "Transcript split into %d chunk(s)", len(chunks))

	results, err := p.summarizeChunks(ctx, r, chunks)
	if err != nil {
		r.to(ctx, stateFailed)
		return "", err
	}
	r.to(ctx, statePerChunkComplete)

	if err := ctx.Err(); err != nil {
		r.to(ctx, stateFailed)
		return "", err
	}

	r.to(ctx, stateFusionInFlight)
	final, err := p.summarizeOnce(ctx, fusionInput(results), summarizer.FusionInstructions(p.targetWords), "fusion", -1)
	if err != nil {
		r.to(ctx, stateFailed)
		return "", err
	}
	r.to(ctx, stateDone)

	return final, nil
}

// summarizeChunks issues one request per chunk, all logically concurrent
// under the configured limit. Results land in a pre-sized slice indexed by
// chunk position, so completion order never affects assembly order. The
// first failure cancels the remaining work.
func (p *implPipeline) summarizeChunks(ctx context.Context, r *run, chunks []chunker.Chunk) ([]string, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]string, len(chunks))
	sem := newSemaphore(p.concurrency)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	r.to(ctx, statePerChunkInFlight)
	for _, c := range chunks {
		wg.Add(1)
		go func(c chunker.Chunk) {
			defer wg.Done()

			if err := sem.acquire(runCtx); err != nil {
				fail(err)
				return
			}
			defer sem.release()

			out, err := p.summarizeOnce(runCtx, c.Text, summarizer.SegmentInstructions, "segment", c.Index)
			if err != nil {
				fail(err)
				return
			}

			results[c.Index] = out
			mu.Lock()
			done++
			if p.onChunkDone != nil {
				p.onChunkDone(done, len(chunks))
			}
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// summarizeOnce performs one logical summarization call with a per-call
// timeout and bounded retries. Caller cancellation is surfaced as the
// context error, not as a request failure.
func (p *implPipeline) summarizeOnce(ctx context.Context, text, instructions, stage string, chunk int) (string, error) {
	var out string
	err := retry.Do(ctx, retry.Config{Attempts: p.maxRetries, BaseDelay: p.retryDelay}, func() error {
		callCtx, cancel := context.WithTimeout(ctx, p.requestTimeout)
		defer cancel()

		var callErr error
		out, callErr = p.client.Summarize(callCtx, text, instructions)
		return callErr
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &summarizer.RequestError{Stage: stage, Chunk: chunk, Err: err}
	}
	return strings.TrimSpace(out), nil
}

// fusionInput assembles the per-chunk summaries, in original chunk order,
// as a bulleted list.
func fusionInput(results []string) string {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(r)
	}
	return sb.String()
}
