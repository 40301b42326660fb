package domain

// Text is one corpus unit: either a whitespace-joined raw string or a
// pre-tokenized ordered token sequence. Both forms are accepted
// interchangeably anywhere a text is expected. When Tokens is non-nil
// it takes precedence and Raw is ignored.
type Text struct {
	Raw    string
	Tokens []string
}

// Raw wraps a raw string as a Text.
func Raw(s string) Text {
	return Text{Raw: s}
}

// PreTokenized wraps an already-split token sequence as a Text.
func PreTokenized(tokens ...string) Text {
	if tokens == nil {
		tokens = []string{}
	}
	return Text{Tokens: tokens}
}

// IsPreTokenized reports whether the text carries its own token split.
func (t Text) IsPreTokenized() bool {
	return t.Tokens != nil
}

// Texts builds a batch of raw texts.
func Texts(ss ...string) []Text {
	batch := make([]Text, len(ss))
	for i, s := range ss {
		batch[i] = Raw(s)
	}
	return batch
}

// IntMatrix is a fixed-width matrix of vocabulary indices, one row per
// text. Rows are padded or truncated to a common length; 0 is the
// padding value.
type IntMatrix [][]int

// FloatMatrix holds one row per text and one column per vocabulary
// index (index 0 included).
type FloatMatrix [][]float64

// MatrixMode selects how a matrix row is filled from a text's index
// sequence.
type MatrixMode string

const (
	// MatrixBinary marks presence: 1 where the index occurs, else 0.
	MatrixBinary MatrixMode = "binary"
	// MatrixCount stores the occurrence count per index.
	MatrixCount MatrixMode = "count"
	// MatrixFreq stores count divided by sequence length.
	MatrixFreq MatrixMode = "freq"
	// MatrixTFIDF stores (1+log tf) * log(1 + texts/(1+texts with index)).
	MatrixTFIDF MatrixMode = "tfidf"
)

// VocabSnapshot is everything a fitted indexer needs to be rebuilt:
// the ranked index plus the counting state behind it.
type VocabSnapshot struct {
	Index         map[string]int // token -> 1-based index
	Counts        map[string]int // token -> total occurrences across the corpus
	Docs          map[string]int // token -> number of texts containing it
	DocumentCount int            // texts seen during fitting
}

// Stats summarizes a stored vocabulary.
type Stats struct {
	VocabSize   int
	TotalTexts  int
	TotalTokens int
}
