package tokenizer

// Tokenizer measures and encodes text in model tokens. It is the only
// notion of "size" the chunker knows about.
type Tokenizer interface {
	Count(text string) int
	Encode(text string) []int
	Decode(ids []int) string
}
