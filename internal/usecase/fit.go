package usecase

import (
	"fmt"

	"textvec/internal/adapter/fs"
	"textvec/internal/adapter/wordindex"
	"textvec/internal/domain"
	"textvec/internal/port"
)

// ProgressFunc reports fitting progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

// FitUseCase builds a vocabulary from a corpus directory and persists
// it to a VocabStore.
type FitUseCase struct {
	store   port.VocabStore
	walker  *fs.Walker
	indexer *wordindex.WordIndexer
}

// NewFitUseCase creates a new fit use case.
func NewFitUseCase(store port.VocabStore, walker *fs.Walker, indexer *wordindex.WordIndexer) *FitUseCase {
	return &FitUseCase{
		store:   store,
		walker:  walker,
		indexer: indexer,
	}
}

// FitResult contains the results of a fitting operation.
type FitResult struct {
	FilesRead  int
	TextsRead  int
	TokensSeen int
	VocabSize  int
	Errors     []string
}

// Fit walks the corpus under root, accumulates token statistics over
// every matched file and stores the resulting vocabulary together with
// the tokenizer fingerprint. progress may be nil.
func (u *FitUseCase) Fit(root string, progress ProgressFunc) (*FitResult, error) {
	result := &FitResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	for i, path := range files {
		texts, err := fs.ReadTexts(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", path, err))
			continue
		}

		if len(texts) > 0 {
			u.indexer.Fit(texts)
			result.TextsRead += len(texts)
		}
		result.FilesRead++

		if progress != nil {
			progress(i+1, len(files), path)
		}
	}

	if result.TextsRead == 0 {
		return nil, ErrEmptyCorpus
	}

	if err := u.store.SaveVocab(u.indexer.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save vocabulary: %w", err)
	}
	if err := u.store.SetFingerprint(u.indexer.Options().Fingerprint()); err != nil {
		return nil, fmt.Errorf("failed to save fingerprint: %w", err)
	}

	result.TokensSeen = u.indexer.TotalTokens()
	result.VocabSize = u.indexer.WordCount()

	stats := domain.Stats{
		VocabSize:   result.VocabSize,
		TotalTexts:  u.indexer.DocumentCount(),
		TotalTokens: result.TokensSeen,
	}
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	return result, nil
}
