// Package store owns the single versioned document holding tasks,
// settings, streak, skip history, reflections, and derived statistics.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/errors"
	"github.com/daykeep/daykeep/internal/kv"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/models"
)

// Legacy pre-versioned layout: one key per collection.
var legacyKeys = []string{
	"tasks", "settings", "streak", "skipBank", "lastActivityDate", "reflections",
}

type Store struct {
	medium kv.Store
	doc    *models.Document
}

func New(medium kv.Store) *Store {
	return &Store{medium: medium}
}

// Load reads the document, creating default contents if absent and
// migrating a legacy multi-key layout when one is detected. The loaded
// document is validated before use; a corrupt document is treated as
// absent, never fatal.
func (s *Store) Load() error {
	raw, err := s.medium.Get(constants.DocumentKey)
	if err != nil {
		if err != kv.ErrNoKey {
			return errors.StorageReadf("failed to read document: %v", err)
		}

		migrated, merr := s.migrateLegacy()
		if merr != nil {
			return merr
		}
		if migrated {
			return nil
		}

		s.doc = models.NewDocument()
		return s.Save()
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		logger.Error("Document unreadable, reinitializing with defaults", "error", err)
		s.doc = models.NewDocument()
		return s.Save()
	}

	s.doc = doc
	s.Validate()
	return nil
}

// Document returns the in-memory document. Load must have succeeded.
func (s *Store) Document() *models.Document {
	return s.doc
}

// Save writes the whole document in a single underlying write. On a
// rejected write the in-memory copy remains authoritative so a retry has
// a consistent base.
func (s *Store) Save() error {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return errors.StorageWritef("failed to serialize document: %v", err)
	}
	if err := s.medium.Set(constants.DocumentKey, data); err != nil {
		return errors.StorageWritef("%v", err)
	}
	return nil
}

// Usage reports estimated medium usage.
func (s *Store) Usage() (used, quota int64, err error) {
	return s.medium.Usage()
}

// Medium exposes the underlying key-value medium for collaborators that
// persist outside the document (the scheduler's timer table).
func (s *Store) Medium() kv.Store {
	return s.medium
}

// migrateLegacy detects the pre-versioned multi-key layout, constructs
// the document shape from it, writes the document once, and removes the
// old keys. A no-op returning false when no legacy keys exist.
func (s *Store) migrateLegacy() (bool, error) {
	present := map[string][]byte{}
	for _, key := range legacyKeys {
		value, err := s.medium.Get(key)
		if err == nil {
			present[key] = value
		}
	}
	if len(present) == 0 {
		return false, nil
	}

	logger.Info("Migrating legacy storage layout", "keys", len(present))

	doc := models.NewDocument()
	if raw, ok := present["tasks"]; ok {
		if err := json.Unmarshal(raw, &doc.Tasks); err != nil {
			logger.Warn("Legacy tasks unreadable, dropped", "error", err)
			doc.Tasks = []models.Task{}
		}
	}
	if raw, ok := present["settings"]; ok {
		if err := json.Unmarshal(raw, &doc.Settings); err != nil {
			logger.Warn("Legacy settings unreadable, using defaults", "error", err)
			doc.Settings = models.DefaultSettings()
		}
	}
	if raw, ok := present["streak"]; ok {
		if err := json.Unmarshal(raw, &doc.Streak); err != nil {
			logger.Warn("Legacy streak unreadable, reset", "error", err)
			doc.Streak = models.StreakState{}
		}
	}
	if raw, ok := present["skipBank"]; ok {
		if err := json.Unmarshal(raw, &doc.SkipBank); err != nil {
			logger.Warn("Legacy skip bank unreadable, dropped", "error", err)
			doc.SkipBank = []models.SkipBankEntry{}
		}
	}
	if raw, ok := present["lastActivityDate"]; ok {
		// Stored either as a bare string or a JSON string.
		var date string
		if err := json.Unmarshal(raw, &date); err != nil {
			date = string(raw)
		}
		doc.LastActivityDate = date
	}
	if raw, ok := present["reflections"]; ok {
		if err := json.Unmarshal(raw, &doc.Reflections); err != nil {
			logger.Warn("Legacy reflections unreadable, dropped", "error", err)
			doc.Reflections = []models.Reflection{}
		}
	}

	s.doc = doc
	s.Validate()
	if err := s.Save(); err != nil {
		return false, err
	}

	for key := range present {
		if err := s.medium.Delete(key); err != nil {
			return false, errors.StorageWritef("failed to remove legacy key %q: %v", key, err)
		}
	}
	return true, nil
}

// decodeDocument unmarshals tolerantly: a structurally wrong top-level
// field is replaced with its default instead of failing the whole load.
func decodeDocument(raw []byte) (*models.Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}

	doc := models.NewDocument()
	decodeField(fields, "version", &doc.Version)
	decodeField(fields, "tasks", &doc.Tasks)
	decodeField(fields, "settings", &doc.Settings)
	decodeField(fields, "streak", &doc.Streak)
	decodeField(fields, "skip_bank", &doc.SkipBank)
	decodeField(fields, "last_activity_date", &doc.LastActivityDate)
	decodeField(fields, "reflections", &doc.Reflections)
	decodeField(fields, "statistics", &doc.Statistics)

	if doc.Tasks == nil {
		doc.Tasks = []models.Task{}
	}
	if doc.SkipBank == nil {
		doc.SkipBank = []models.SkipBankEntry{}
	}
	if doc.Reflections == nil {
		doc.Reflections = []models.Reflection{}
	}
	if doc.Statistics.SkipReasons == nil {
		doc.Statistics.SkipReasons = map[string]int{}
	}
	return doc, nil
}

func decodeField(fields map[string]json.RawMessage, name string, dst interface{}) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("Document field malformed, using default", "field", name, "error", err)
	}
}
