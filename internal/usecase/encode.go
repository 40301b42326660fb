package usecase

import (
	"errors"
	"fmt"

	"textvec/internal/adapter/wordindex"
	"textvec/internal/port"
)

// ErrVocabularyStale means the stored vocabulary was fitted with
// different tokenizer settings than the ones now configured.
var ErrVocabularyStale = errors.New("stored vocabulary was fitted with different tokenizer settings")

// EncodeUseCase restores a fitted processor from a VocabStore.
type EncodeUseCase struct {
	store  port.VocabStore
	opts   wordindex.Options
	padder port.SequencePadder
}

// NewEncodeUseCase creates a new encode use case.
func NewEncodeUseCase(store port.VocabStore, opts wordindex.Options, padder port.SequencePadder) *EncodeUseCase {
	return &EncodeUseCase{
		store:  store,
		opts:   opts,
		padder: padder,
	}
}

// Processor loads the stored vocabulary and returns a processor ready
// to encode against it. The stored fingerprint must match the
// configured tokenizer options, otherwise encodings would not line up
// with the fitted vocabulary.
func (u *EncodeUseCase) Processor() (*TextProcessor, error) {
	fp, err := u.store.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary fingerprint: %w", err)
	}
	if fp != "" && fp != u.opts.Fingerprint() {
		return nil, ErrVocabularyStale
	}

	snap, err := u.store.LoadVocab()
	if err != nil {
		return nil, err
	}

	indexer := wordindex.NewFromSnapshot(u.opts, snap)
	return NewFittedTextProcessor(indexer, u.padder), nil
}
