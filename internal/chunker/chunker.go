package chunker

import (
	"regexp"
	"strings"
)

// Sentence units: everything up to and including a run of terminal
// punctuation plus any trailing whitespace. Text after the last terminator
// becomes a final unit, so units always concatenate back to the input.
var sentenceRe = regexp.MustCompile(`[^.!?]*[.!?]+\s*`)

// Split partitions text into chunks with a greedy walk: sentence units are
// accumulated while the candidate chunk stays within budget, then the chunk
// is closed. A single unit over budget is hard-split at the token level so
// no chunk ever exceeds the budget.
func (c *implChunker) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}

	var chunks []Chunk
	var cur strings.Builder
	curTokens := 0

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Text: cur.String(), Tokens: curTokens})
		cur.Reset()
		curTokens = 0
	}

	for _, unit := range splitUnits(text) {
		unitTokens := c.tok.Count(unit)

		if unitTokens > c.maxTokens {
			flush()
			for _, piece := range c.hardSplit(unit) {
				chunks = append(chunks, Chunk{Index: len(chunks), Text: piece, Tokens: c.tok.Count(piece)})
			}
			continue
		}

		if cur.Len() > 0 {
			// Token counts are not additive under BPE, so measure the
			// candidate chunk as a whole.
			if n := c.tok.Count(cur.String() + unit); n <= c.maxTokens {
				cur.WriteString(unit)
				curTokens = n
				continue
			}
			flush()
		}

		cur.WriteString(unit)
		curTokens = unitTokens
	}
	flush()

	return chunks, nil
}

// hardSplit slices an oversized unit into budget-sized token windows.
// Decoding contiguous token windows concatenates back to the original text.
func (c *implChunker) hardSplit(unit string) []string {
	ids := c.tok.Encode(unit)
	pieces := make([]string, 0, (len(ids)+c.maxTokens-1)/c.maxTokens)
	for start := 0; start < len(ids); start += c.maxTokens {
		end := min(start+c.maxTokens, len(ids))
		pieces = append(pieces, c.tok.Decode(ids[start:end]))
	}
	return pieces
}

func splitUnits(text string) []string {
	locs := sentenceRe.FindAllStringIndex(text, -1)
	units := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		units = append(units, text[loc[0]:loc[1]])
		prev = loc[1]
	}
	if prev < len(text) {
		units = append(units, text[prev:])
	}
	return units
}
