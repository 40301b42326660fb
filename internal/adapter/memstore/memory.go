// Package memstore provides an in-memory VocabStore, useful for tests
// and for callers that never persist a vocabulary to disk.
package memstore

import (
	"sync"

	"textvec/internal/domain"
	"textvec/internal/port"
)

type MemoryVocabStore struct {
	mu          sync.RWMutex
	snap        *domain.VocabSnapshot
	stats       domain.Stats
	fingerprint string
}

func NewMemoryVocabStore() *MemoryVocabStore {
	return &MemoryVocabStore{}
}

func (s *MemoryVocabStore) SaveVocab(snap domain.VocabSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := domain.VocabSnapshot{
		Index:         copyIntMap(snap.Index),
		Counts:        copyIntMap(snap.Counts),
		Docs:          copyIntMap(snap.Docs),
		DocumentCount: snap.DocumentCount,
	}
	s.snap = &copied
	return nil
}

func (s *MemoryVocabStore) LoadVocab() (domain.VocabSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return domain.VocabSnapshot{}, port.ErrNoVocab
	}
	return domain.VocabSnapshot{
		Index:         copyIntMap(s.snap.Index),
		Counts:        copyIntMap(s.snap.Counts),
		Docs:          copyIntMap(s.snap.Docs),
		DocumentCount: s.snap.DocumentCount,
	}, nil
}

func (s *MemoryVocabStore) GetStats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, nil
}

func (s *MemoryVocabStore) UpdateStats(stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	return nil
}

func (s *MemoryVocabStore) SetFingerprint(fp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fingerprint = fp
	return nil
}

func (s *MemoryVocabStore) Fingerprint() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint, nil
}

func (s *MemoryVocabStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	s.stats = domain.Stats{}
	s.fingerprint = ""
	return nil
}

func (s *MemoryVocabStore) Close() error {
	return nil
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
