package summarizer

import "fmt"

// RequestError reports a summarization call that failed after all allowed
// retries. Stage is "segment" or "fusion"; Chunk is the chunk index for
// segment calls and -1 for fusion.
type RequestError struct {
	Stage string
	Chunk int
	Err   error
}

func (e *RequestError) Error() string {
	if e.Chunk >= 0 {
		return fmt.Sprintf("summarize %s (chunk %d): %v", e.Stage, e.Chunk, e.Err)
	}
	return fmt.Sprintf("summarize %s: %v", e.Stage, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
