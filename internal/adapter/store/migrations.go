package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current storage schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// SchemaVersion returns the schema version recorded in the database,
// 0 when the database has never been versioned.
func (s *BoltVocabStore) SchemaVersion() (int, error) {
	version := 0
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &version)
	})
	return version, err
}

// ensureSchema runs on open: it upgrades older databases to the
// current schema and refuses databases written by a newer version.
func (s *BoltVocabStore) ensureSchema() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version > CurrentSchemaVersion {
		return fmt.Errorf("vocab db uses schema v%d, this build supports up to v%d", version, CurrentSchemaVersion)
	}

	for v := version; v < CurrentSchemaVersion; v++ {
		if err := s.runMigration(v, v+1); err != nil {
			return fmt.Errorf("migration from v%d to v%d failed: %w", v, v+1, err)
		}
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(CurrentSchemaVersion)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
}

// runMigration upgrades the storage layout one version step.
func (s *BoltVocabStore) runMigration(from, to int) error {
	switch {
	case from == 0 && to == 1:
		// v1 is the first versioned layout; the buckets created on
		// open are all it needs.
		return nil
	default:
		return nil
	}
}
