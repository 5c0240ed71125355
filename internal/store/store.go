// Package store is the state container for the vault log: one
// in-memory document guarded by a mutex, mutated through command
// methods and flushed whole to persistent storage after every change.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/stats"
)

// ErrSessionNotFound is returned when a session id is not in the log,
// e.g. a deep link to a session deleted on another screen.
var ErrSessionNotFound = errors.New("session not found")

// Persister saves and restores the store document. *storage.DB is the
// real implementation; tests substitute an in-memory one.
type Persister interface {
	LoadDocument() (*models.Document, error)
	SaveDocument(*models.Document) error
}

// Store owns the application state. All methods are safe for
// concurrent use; every mutator replaces state in memory first and
// then flushes the whole document.
type Store struct {
	mu  sync.RWMutex
	doc *models.Document
	db  Persister
	log *slog.Logger

	now func() time.Time
}

// Open loads the persisted document, runs the schema migration, and
// returns a ready store. An unreadable document is not fatal: the
// store starts from the default empty state instead, matching the
// fail-safe load behavior of the app.
func Open(db Persister, log *slog.Logger) (*Store, error) {
	doc, err := db.LoadDocument()
	if err != nil {
		log.Warn("store document unreadable, starting from defaults", "error", err)
		doc = nil
	}
	if doc == nil {
		doc = models.NewDocument()
	}

	migrated := doc.Version != models.SchemaVersion
	doc.Migrate()

	s := &Store{doc: doc, db: db, log: log, now: time.Now}
	if migrated {
		if err := db.SaveDocument(doc); err != nil {
			return nil, err
		}
		log.Info("store migrated", "version", doc.Version)
	}
	return s, nil
}

// flush writes the current document. Memory is already updated when
// this runs; a failed flush leaves the session usable and is retried
// implicitly by the next mutation.
func (s *Store) flush() error {
	if err := s.db.SaveDocument(s.doc); err != nil {
		s.log.Warn("store flush failed", "error", err)
		return err
	}
	return nil
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Settings
}

// Sessions returns a deep copy of the session list, newest first.
// Callers encode outside the lock, so nothing returned may share
// backing arrays with the live document.
func (s *Store) Sessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Session, len(s.doc.Sessions))
	for i := range s.doc.Sessions {
		out[i] = s.doc.Sessions[i].Clone()
	}
	return out
}

// Session returns a deep copy of the session with the given id.
func (s *Store) Session(id string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].ID == id {
			return s.doc.Sessions[i].Clone(), nil
		}
	}
	return models.Session{}, ErrSessionNotFound
}

// WeeklyPlan returns the active plan (default or override).
func (s *Store) WeeklyPlan() models.WeeklyPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.WeeklyPlan
}

// AttemptVideos returns the clips linked to one attempt.
func (s *Store) AttemptVideos(key models.VideoKey) []models.AttemptVideo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vids := s.doc.AttemptVideos[key.String()]
	out := make([]models.AttemptVideo, len(vids))
	copy(out, vids)
	return out
}

// Snapshot returns a deep copy of the whole document, for backup
// export. The copy goes through JSON so callers can hold it without a
// lock.
func (s *Store) Snapshot() (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, err := json.Marshal(s.doc)
	if err != nil {
		return nil, err
	}
	var out models.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PersonalRecord recomputes the PR from the full session collection.
// It is never stored.
func (s *Store) PersonalRecord() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.PersonalRecord(s.doc.Sessions)
}

// SetupAverages recomputes the mean setup numbers across all sessions.
func (s *Store) SetupAverages() stats.SetupAverages {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.ComputeSetupAverages(s.doc.Sessions)
}
