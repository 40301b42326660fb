package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"textvec/internal/domain"
	"textvec/internal/port"
)

var (
	bucketIndex  = []byte("index")
	bucketCounts = []byte("counts")
	bucketDocs   = []byte("docs")
	bucketMeta   = []byte("meta")

	keyStats         = []byte("corpus_stats")
	keyDocumentCount = []byte("document_count")
	keyFingerprint   = []byte("fingerprint")
)

// BoltVocabStore persists fitted vocabularies in a bbolt database. One
// database holds one vocabulary: index, counting state, corpus stats,
// and the tokenizer fingerprint it was fitted under.
type BoltVocabStore struct {
	db *bbolt.DB
}

func NewBoltVocabStore(path string) (*BoltVocabStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocab db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketIndex, bucketCounts, bucketDocs, bucketMeta}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltVocabStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// SaveVocab replaces the stored vocabulary with the given snapshot in
// a single transaction.
func (s *BoltVocabStore) SaveVocab(snap domain.VocabSnapshot) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := clearBucket(tx.Bucket(bucketIndex)); err != nil {
			return err
		}
		if err := clearBucket(tx.Bucket(bucketCounts)); err != nil {
			return err
		}
		if err := clearBucket(tx.Bucket(bucketDocs)); err != nil {
			return err
		}

		if err := putIntMap(tx.Bucket(bucketIndex), snap.Index); err != nil {
			return err
		}
		if err := putIntMap(tx.Bucket(bucketCounts), snap.Counts); err != nil {
			return err
		}
		if err := putIntMap(tx.Bucket(bucketDocs), snap.Docs); err != nil {
			return err
		}

		data, err := json.Marshal(snap.DocumentCount)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyDocumentCount, data)
	})
}

// LoadVocab reads the stored snapshot. It returns port.ErrNoVocab when
// no vocabulary has been saved.
func (s *BoltVocabStore) LoadVocab() (domain.VocabSnapshot, error) {
	var snap domain.VocabSnapshot
	err := s.db.View(func(tx *bbolt.Tx) error {
		idxBucket := tx.Bucket(bucketIndex)
		if k, _ := idxBucket.Cursor().First(); k == nil {
			return port.ErrNoVocab
		}

		index, err := readIntMap(idxBucket)
		if err != nil {
			return err
		}
		counts, err := readIntMap(tx.Bucket(bucketCounts))
		if err != nil {
			return err
		}
		docs, err := readIntMap(tx.Bucket(bucketDocs))
		if err != nil {
			return err
		}

		docCount := 0
		if data := tx.Bucket(bucketMeta).Get(keyDocumentCount); data != nil {
			if err := json.Unmarshal(data, &docCount); err != nil {
				return err
			}
		}

		snap = domain.VocabSnapshot{
			Index:         index,
			Counts:        counts,
			Docs:          docs,
			DocumentCount: docCount,
		}
		return nil
	})
	return snap, err
}

func (s *BoltVocabStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltVocabStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyStats, data)
	})
}

func (s *BoltVocabStore) SetFingerprint(fp string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyFingerprint, []byte(fp))
	})
}

func (s *BoltVocabStore) Fingerprint() (string, error) {
	var fp string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(bucketMeta).Get(keyFingerprint); data != nil {
			fp = string(data)
		}
		return nil
	})
	return fp, err
}

// Clear removes the stored vocabulary, stats, and fingerprint. The
// schema version is preserved.
func (s *BoltVocabStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketIndex, bucketCounts, bucketDocs} {
			if err := clearBucket(tx.Bucket(name)); err != nil {
				return err
			}
		}

		meta := tx.Bucket(bucketMeta)
		for _, key := range [][]byte{keyStats, keyDocumentCount, keyFingerprint} {
			if err := meta.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltVocabStore) Close() error {
	return s.db.Close()
}

func clearBucket(b *bbolt.Bucket) error {
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		if err := c.Delete(); err != nil {
			return err
		}
	}
	return nil
}

func putIntMap(b *bbolt.Bucket, m map[string]int) error {
	for k, v := range m {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := b.Put([]byte(k), data); err != nil {
			return err
		}
	}
	return nil
}

func readIntMap(b *bbolt.Bucket) (map[string]int, error) {
	m := make(map[string]int)
	err := b.ForEach(func(k, v []byte) error {
		var i int
		if err := json.Unmarshal(v, &i); err != nil {
			return err
		}
		m[string(k)] = i
		return nil
	})
	return m, err
}
