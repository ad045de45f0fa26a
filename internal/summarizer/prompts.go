package summarizer

import "fmt"

// SegmentInstructions is the system instruction for each per-chunk call.
const SegmentInstructions = "Summarise this transcript segment. Keep every distinct topic, " +
	"decision, and example; drop filler, greetings, and sponsor reads."

// FusionInstructions builds the system instruction for the final fusion
// call. The word count is a soft target communicated to the model, not
// enforced mechanically.
func FusionInstructions(targetWords int) string {
	return fmt.Sprintf("The following bullet points summarise consecutive segments of one video, "+
		"in order. Condense them into a single cohesive paragraph of roughly %d words.", targetWords)
}
