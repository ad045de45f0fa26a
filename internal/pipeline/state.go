package pipeline

import (
	"context"

	"github.com/quangvinhtran/tubesum/internal/logger"
)

type runState int

const (
	stateIdle runState = iota
	stateChunkingDone
	statePerChunkInFlight
	statePerChunkComplete
	stateFusionInFlight
	stateDone
	stateFailed
)

func (s runState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateChunkingDone:
		return "chunking-done"
	case statePerChunkInFlight:
		return "per-chunk-in-flight"
	case statePerChunkComplete:
		return "per-chunk-complete"
	case stateFusionInFlight:
		return "fusion-in-flight"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// run tracks one pipeline execution through its states. Failed is terminal.
type run struct {
	state  runState
	logger logger.Logger
}

func newRun(log logger.Logger) *run {
	return &run{state: stateIdle, logger: log}
}

func (r *run) to(ctx context.Context, next runState) {
	if r.state == stateFailed {
		return
	}
	r.state = next
	r.logger.Debug(ctx, "pipeline state: %s", next)
}
