package usecase

import (
	"errors"
	"fmt"
	"math"

	"textvec/internal/domain"
	"textvec/internal/port"
)

// Soft failure conditions of the text processor. None of them is ever
// raised as a panic; callers decide how to surface the guidance.
var (
	// ErrVocabularyNotBuilt is returned by encoding operations invoked
	// before ReadAllTexts has built the vocabulary.
	ErrVocabularyNotBuilt = errors.New("vocabulary not built")
	// ErrEmptyCorpus is returned when the texts given to ReadAllTexts
	// flatten to nothing.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrVocabularyBuilt is returned by a second ReadAllTexts call; a
	// processor fits its vocabulary exactly once.
	ErrVocabularyBuilt = errors.New("vocabulary already built")
)

// State is the lifecycle state of a TextProcessor's vocabulary.
type State int

const (
	// StateEmpty means no vocabulary has been fitted yet.
	StateEmpty State = iota
	// StateBuilt means the vocabulary is fitted and encoding is
	// available. The only valid transition is Empty to Built.
	StateBuilt
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilt:
		return "built"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TextProcessor builds a word-to-index vocabulary from sample texts
// and converts texts into fixed-length index sequences or bag-of-words
// vectors. Tokenization and padding are delegated to the injected
// capabilities; the processor owns only the vocabulary lifecycle.
//
// A processor is not safe for concurrent use; callers sharing one
// across goroutines must synchronize externally.
type TextProcessor struct {
	indexer port.TokenIndexer
	padder  port.SequencePadder
	state   State
}

// NewTextProcessor creates a processor with an empty vocabulary.
func NewTextProcessor(indexer port.TokenIndexer, padder port.SequencePadder) *TextProcessor {
	return &TextProcessor{indexer: indexer, padder: padder}
}

// NewFittedTextProcessor wraps an indexer that was already fitted, for
// example one restored from a snapshot, so the processor starts in
// StateBuilt and encoding is immediately available.
func NewFittedTextProcessor(indexer port.TokenIndexer, padder port.SequencePadder) *TextProcessor {
	return &TextProcessor{indexer: indexer, padder: padder, state: StateBuilt}
}

// State returns the vocabulary lifecycle state.
func (p *TextProcessor) State() State {
	return p.state
}

// Vocabulary returns the fitted token -> index mapping, with indices
// assigned from 1. The returned map is the indexer's cache and must be
// treated as read-only; it is stable across calls. Before the
// vocabulary is built it returns (nil, ErrVocabularyNotBuilt).
func (p *TextProcessor) Vocabulary() (map[string]int, error) {
	if p.state != StateBuilt {
		return nil, ErrVocabularyNotBuilt
	}
	return p.indexer.WordIndex(), nil
}

// WordCount returns the vocabulary size, 0 while unbuilt.
func (p *TextProcessor) WordCount() int {
	if p.state != StateBuilt {
		return 0
	}
	return p.indexer.WordCount()
}

// ReadAllTexts flattens all batches into a single list, fits the
// vocabulary over it, and transitions the processor to StateBuilt. All
// batches share one vocabulary. If the flattened list is empty it
// returns (nil, ErrEmptyCorpus) and the processor stays empty. A
// processor fits exactly once: further calls return
// (nil, ErrVocabularyBuilt) and leave the vocabulary untouched.
func (p *TextProcessor) ReadAllTexts(batches ...[]domain.Text) (map[string]int, error) {
	if p.state == StateBuilt {
		return nil, ErrVocabularyBuilt
	}

	total := 0
	for _, b := range batches {
		total += len(b)
	}
	if total == 0 {
		return nil, ErrEmptyCorpus
	}

	all := make([]domain.Text, 0, total)
	for _, b := range batches {
		all = append(all, b...)
	}

	p.indexer.Fit(all)
	p.state = StateBuilt
	return p.indexer.WordIndex(), nil
}

// TextsToNum converts each batch into a matrix of vocabulary indices
// with exactly length columns per row. Tokens absent from the
// vocabulary are dropped. Rows shorter than length are padded and rows
// longer than length truncated by the injected padder; with the
// default padder, zeros fill the front and only the last length tokens
// survive. A negative length pads each batch to its longest sequence.
//
// Before the vocabulary is built it returns one nil matrix per batch
// together with ErrVocabularyNotBuilt.
func (p *TextProcessor) TextsToNum(length int, batches ...[]domain.Text) ([]domain.IntMatrix, error) {
	if p.state != StateBuilt {
		return make([]domain.IntMatrix, len(batches)), ErrVocabularyNotBuilt
	}

	out := make([]domain.IntMatrix, len(batches))
	for i, b := range batches {
		out[i] = p.padder.Pad(p.indexer.TextsToSequences(b), length)
	}
	return out, nil
}

// TextsToBOW converts each batch into a bag-of-words matrix of shape
// (number of texts, vocabulary size + 1): cell j is 1.0 when index j
// occurs anywhere in the text, else 0.0. Column 0 stays 0 since token
// indices start at 1. The unbuilt guard matches TextsToNum.
func (p *TextProcessor) TextsToBOW(batches ...[]domain.Text) ([]domain.FloatMatrix, error) {
	return p.TextsToMatrix(domain.MatrixBinary, batches...)
}

// TextsToMatrix generalizes TextsToBOW over how a cell is filled from
// the text's index sequence: binary presence, occurrence count,
// count normalized by sequence length, or tf-idf.
func (p *TextProcessor) TextsToMatrix(mode domain.MatrixMode, batches ...[]domain.Text) ([]domain.FloatMatrix, error) {
	switch mode {
	case domain.MatrixBinary, domain.MatrixCount, domain.MatrixFreq, domain.MatrixTFIDF:
	default:
		return nil, fmt.Errorf("unknown matrix mode: %q", mode)
	}
	if p.state != StateBuilt {
		return make([]domain.FloatMatrix, len(batches)), ErrVocabularyNotBuilt
	}

	width := p.indexer.WordCount() + 1
	out := make([]domain.FloatMatrix, len(batches))
	for i, b := range batches {
		seqs := p.indexer.TextsToSequences(b)
		m := make(domain.FloatMatrix, len(seqs))
		for r, seq := range seqs {
			m[r] = p.matrixRow(mode, seq, width)
		}
		out[i] = m
	}
	return out, nil
}

func (p *TextProcessor) matrixRow(mode domain.MatrixMode, seq []int, width int) []float64 {
	row := make([]float64, width)
	if len(seq) == 0 {
		return row
	}

	counts := make(map[int]int, len(seq))
	for _, idx := range seq {
		counts[idx]++
	}

	switch mode {
	case domain.MatrixBinary:
		for idx := range counts {
			row[idx] = 1
		}
	case domain.MatrixCount:
		for idx, c := range counts {
			row[idx] = float64(c)
		}
	case domain.MatrixFreq:
		for idx, c := range counts {
			row[idx] = float64(c) / float64(len(seq))
		}
	case domain.MatrixTFIDF:
		docCount := p.indexer.DocumentCount()
		indexDocs := p.indexer.IndexDocs()
		for idx, c := range counts {
			tf := 1 + math.Log(float64(c))
			idf := math.Log(1 + float64(docCount)/float64(1+indexDocs[idx]))
			row[idx] = tf * idf
		}
	}
	return row
}
