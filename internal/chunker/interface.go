package chunker

// Chunk is a token-bounded contiguous slice of a transcript. Chunks form an
// ordered, gap-free partition: concatenating their texts in index order
// reproduces the input exactly.
type Chunk struct {
	Index  int
	Text   string
	Tokens int
}

// Chunker splits transcript text into token-bounded chunks
type Chunker interface {
	Split(text string) ([]Chunk, error)
}
