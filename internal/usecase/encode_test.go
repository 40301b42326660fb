package usecase

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"textvec/internal/adapter/fs"
	"textvec/internal/adapter/memstore"
	"textvec/internal/adapter/sequence"
	"textvec/internal/adapter/store"
	"textvec/internal/adapter/wordindex"
	"textvec/internal/domain"
	"textvec/internal/port"
)

// fitTestCorpus writes a small corpus whose fitted index is
// the=1 sat=2 cat=3 dog=4 bird=5.
func fitTestCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeCorpusFile(t, root, "corpus.txt", "the cat sat\nthe dog sat\nthe bird")
	return root
}

func TestProcessorRestoresFromStore(t *testing.T) {
	st := memstore.NewMemoryVocabStore()
	if _, err := newFitUseCase(st).Fit(fitTestCorpus(t), nil); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	enc := NewEncodeUseCase(st, wordindex.DefaultOptions(), sequence.DefaultPadder())
	p, err := enc.Processor()
	if err != nil {
		t.Fatalf("Processor() error = %v", err)
	}

	if p.State() != StateBuilt {
		t.Errorf("State() = %v, want %v", p.State(), StateBuilt)
	}
	if p.WordCount() != 5 {
		t.Errorf("WordCount() = %d, want 5", p.WordCount())
	}

	matrices, err := p.TextsToNum(3, domain.Texts("the cat"))
	if err != nil {
		t.Fatalf("TextsToNum() error = %v", err)
	}
	want := domain.IntMatrix{{0, 1, 3}}
	if !reflect.DeepEqual(matrices[0], want) {
		t.Errorf("TextsToNum() = %v, want %v", matrices[0], want)
	}
}

func TestProcessorRefusesRefit(t *testing.T) {
	st := memstore.NewMemoryVocabStore()
	if _, err := newFitUseCase(st).Fit(fitTestCorpus(t), nil); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	p, err := NewEncodeUseCase(st, wordindex.DefaultOptions(), sequence.DefaultPadder()).Processor()
	if err != nil {
		t.Fatalf("Processor() error = %v", err)
	}
	if _, err := p.ReadAllTexts(domain.Texts("more words")); !errors.Is(err, ErrVocabularyBuilt) {
		t.Errorf("ReadAllTexts() on restored processor error = %v, want %v", err, ErrVocabularyBuilt)
	}
}

func TestProcessorNoVocab(t *testing.T) {
	st := memstore.NewMemoryVocabStore()
	enc := NewEncodeUseCase(st, wordindex.DefaultOptions(), sequence.DefaultPadder())
	if _, err := enc.Processor(); !errors.Is(err, port.ErrNoVocab) {
		t.Errorf("Processor() with empty store error = %v, want %v", err, port.ErrNoVocab)
	}
}

func TestProcessorStaleFingerprint(t *testing.T) {
	st := memstore.NewMemoryVocabStore()
	if _, err := newFitUseCase(st).Fit(fitTestCorpus(t), nil); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	opts := wordindex.DefaultOptions()
	opts.Lower = false
	enc := NewEncodeUseCase(st, opts, sequence.DefaultPadder())
	if _, err := enc.Processor(); !errors.Is(err, ErrVocabularyStale) {
		t.Errorf("Processor() with changed options error = %v, want %v", err, ErrVocabularyStale)
	}
}

func TestProcessorAcceptsMissingFingerprint(t *testing.T) {
	st := memstore.NewMemoryVocabStore()
	indexer := wordindex.NewWordIndexer(wordindex.DefaultOptions())
	indexer.Fit(domain.Texts("alpha beta"))
	if err := st.SaveVocab(indexer.Snapshot()); err != nil {
		t.Fatalf("SaveVocab() error = %v", err)
	}

	enc := NewEncodeUseCase(st, wordindex.DefaultOptions(), sequence.DefaultPadder())
	p, err := enc.Processor()
	if err != nil {
		t.Fatalf("Processor() without stored fingerprint error = %v", err)
	}
	if p.WordCount() != 2 {
		t.Errorf("WordCount() = %d, want 2", p.WordCount())
	}
}

func TestFitThenEncodeAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "vocab.db")

	st, err := store.NewBoltVocabStore(dbPath)
	if err != nil {
		t.Fatalf("NewBoltVocabStore() error = %v", err)
	}
	walker := fs.NewWalker([]string{"**/*.txt"}, nil)
	indexer := wordindex.NewWordIndexer(wordindex.DefaultOptions())
	if _, err := NewFitUseCase(st, walker, indexer).Fit(fitTestCorpus(t), nil); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	st, err = store.NewBoltVocabStore(dbPath)
	if err != nil {
		t.Fatalf("NewBoltVocabStore() reopen error = %v", err)
	}
	defer st.Close()

	p, err := NewEncodeUseCase(st, wordindex.DefaultOptions(), sequence.DefaultPadder()).Processor()
	if err != nil {
		t.Fatalf("Processor() after reopen error = %v", err)
	}

	matrices, err := p.TextsToNum(4, domain.Texts("the dog sat"))
	if err != nil {
		t.Fatalf("TextsToNum() error = %v", err)
	}
	want := domain.IntMatrix{{0, 1, 4, 2}}
	if !reflect.DeepEqual(matrices[0], want) {
		t.Errorf("TextsToNum() = %v, want %v", matrices[0], want)
	}

	vocab, err := p.Vocabulary()
	if err != nil {
		t.Fatalf("Vocabulary() error = %v", err)
	}
	wantVocab := map[string]int{"the": 1, "sat": 2, "cat": 3, "dog": 4, "bird": 5}
	if !reflect.DeepEqual(vocab, wantVocab) {
		t.Errorf("Vocabulary() = %v, want %v", vocab, wantVocab)
	}
}
