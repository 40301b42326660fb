package port

import (
	"errors"

	"textvec/internal/domain"
)

// ErrNoVocab is returned by LoadVocab when the store holds no fitted
// vocabulary yet.
var ErrNoVocab = errors.New("no vocabulary stored")

// VocabStore persists fitted vocabularies between invocations.
type VocabStore interface {
	SaveVocab(snap domain.VocabSnapshot) error

	LoadVocab() (domain.VocabSnapshot, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	// SetFingerprint records the tokenizer configuration the stored
	// vocabulary was fitted with.
	SetFingerprint(fp string) error

	// Fingerprint returns the recorded tokenizer configuration, or ""
	// when none was set.
	Fingerprint() (string, error)

	Clear() error

	Close() error
}
