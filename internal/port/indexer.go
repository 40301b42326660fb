package port

import "textvec/internal/domain"

// TokenIndexer is the tokenizer/indexer capability the processor
// delegates to: it learns a token -> index mapping from sample texts
// and converts texts into index sequences.
type TokenIndexer interface {
	// Fit accumulates vocabulary statistics from the given texts.
	Fit(texts []domain.Text)

	// TextsToSequences converts each text into its sequence of
	// vocabulary indices. Tokens absent from the vocabulary are
	// dropped silently.
	TextsToSequences(texts []domain.Text) [][]int

	// WordIndex returns the fitted token -> index mapping. Indices are
	// assigned from 1; 0 is reserved as the padding value.
	WordIndex() map[string]int

	// WordCount returns the number of distinct tokens fitted.
	WordCount() int

	// IndexDocs returns, per vocabulary index, the number of fitted
	// texts containing that index.
	IndexDocs() map[int]int

	// DocumentCount returns the number of texts seen by Fit.
	DocumentCount() int
}
