package store

import (
	"fmt"
	"math"

	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/units"
	"github.com/google/uuid"
)

// SetUnits switches the display unit preference.
func (s *Store) SetUnits(u units.Unit) error {
	if !u.IsValid() {
		return fmt.Errorf("unknown unit mode %q", u)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Settings.Units = u
	return s.flush()
}

// SetAthleteField updates one athlete profile field by name, the way
// the settings screen edits it.
func (s *Store) SetAthleteField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &s.doc.Settings.Athlete
	switch field {
	case "firstName":
		a.FirstName = value
	case "lastName":
		a.LastName = value
	case "year":
		a.Year = value
	case "level":
		l := models.Level(value)
		if !l.IsValid() {
			return fmt.Errorf("unknown athlete level %q", value)
		}
		a.Level = l
	default:
		return fmt.Errorf("unknown athlete field %q", field)
	}
	return s.flush()
}

// SetWatermarkURI records the overlay image used on exported videos.
func (s *Store) SetWatermarkURI(uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Settings.WatermarkURI = uri
	return s.flush()
}

// AddSession validates and inserts a new session at the head of the
// list (newest first). ID and date are assigned here and are immutable
// afterwards. A practice session with an empty routine snapshots the
// active plan's routine for its day.
func (s *Store) AddSession(sess models.Session) (models.Session, error) {
	if !sess.Type.IsValid() {
		return models.Session{}, fmt.Errorf("unknown session type %q", sess.Type)
	}
	if err := validateHeights(sess.Heights); err != nil {
		return models.Session{}, err
	}
	if err := validateHeights(sess.Attempts); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess.ID = uuid.NewString()
	sess.Date = s.now()
	if sess.Type == models.TypePractice && len(sess.Routine) == 0 && sess.DayName != "" {
		if day, ok := s.doc.WeeklyPlan[sess.DayName]; ok {
			sess.Routine = append([]models.RoutineItem(nil), day.Routine...)
		}
	}
	assignBlockIDs(sess.Heights)
	assignBlockIDs(sess.Attempts)
	sess.Normalize()

	s.doc.Sessions = append([]models.Session{sess}, s.doc.Sessions...)
	return sess.Clone(), s.flush()
}

// validateHeights rejects non-numeric or negative bar heights before
// anything is persisted. Form input arrives as JSON numbers, so NaN
// shows up as a decode error upstream, but a negative or absurd value
// still has to be refused here.
func validateHeights(blocks []models.HeightAttempt) error {
	for _, b := range blocks {
		if math.IsNaN(b.HeightIn) || math.IsInf(b.HeightIn, 0) || b.HeightIn < 0 {
			return fmt.Errorf("invalid bar height %v", b.HeightIn)
		}
	}
	return nil
}

// SessionPatch is a merge-patch for UpdateSession. Nil fields are left
// untouched; id, type, and date are immutable and not patchable.
type SessionPatch struct {
	Goals    *string                `json:"goals"`
	Notes    *string                `json:"notes"`
	MeetName *string                `json:"meetName"`
	Poles    []models.Pole          `json:"poles"`
	Routine  []models.RoutineItem   `json:"routine"`
	Heights  []models.HeightAttempt `json:"heights"`
	Attempts []models.HeightAttempt `json:"attempts"`
	Setup    *models.Setup          `json:"setup"`
}

// UpdateSession merge-patches the session with the given id.
func (s *Store) UpdateSession(id string, patch SessionPatch) (models.Session, error) {
	if err := validateHeights(patch.Heights); err != nil {
		return models.Session{}, err
	}
	if err := validateHeights(patch.Attempts); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(id)
	if sess == nil {
		return models.Session{}, ErrSessionNotFound
	}
	if patch.Goals != nil {
		sess.Goals = *patch.Goals
	}
	if patch.Notes != nil {
		sess.Notes = *patch.Notes
	}
	if patch.MeetName != nil && sess.Type == models.TypeMeet {
		sess.MeetName = *patch.MeetName
	}
	if patch.Poles != nil {
		sess.Poles = patch.Poles
	}
	if patch.Routine != nil {
		sess.Routine = patch.Routine
	}
	if patch.Heights != nil {
		sess.Heights = patch.Heights
	}
	if patch.Attempts != nil {
		sess.Attempts = patch.Attempts
	}
	if patch.Setup != nil {
		sess.Setup = *patch.Setup
	}
	// Blocks introduced by the patch get ids, same as at creation.
	assignBlockIDs(sess.Heights)
	assignBlockIDs(sess.Attempts)
	sess.Normalize()
	return sess.Clone(), s.flush()
}

func assignBlockIDs(blocks []models.HeightAttempt) {
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.NewString()
		}
	}
}

// DeleteSession removes the session with the given id.
func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].ID == id {
			s.doc.Sessions = append(s.doc.Sessions[:i], s.doc.Sessions[i+1:]...)
			return s.flush()
		}
	}
	return ErrSessionNotFound
}

// RecordAttempt sets the result of one attempt slot within a session's
// height block, enforcing the cleared-bar truncation rule.
func (s *Store) RecordAttempt(sessionID, blockID string, idx int, result models.AttemptResult, kind models.AttemptKind) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		return models.Session{}, ErrSessionNotFound
	}
	block := sess.Block(blockID)
	if block == nil {
		return models.Session{}, fmt.Errorf("height block %q not found", blockID)
	}
	if err := block.Record(idx, result, kind); err != nil {
		return models.Session{}, err
	}
	return sess.Clone(), s.flush()
}

// SetRoutineDone toggles one checkable routine item in a logged
// practice. Headers are not checkable.
func (s *Store) SetRoutineDone(sessionID string, itemIdx int, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.findLocked(sessionID)
	if sess == nil {
		return ErrSessionNotFound
	}
	if itemIdx < 0 || itemIdx >= len(sess.Routine) {
		return fmt.Errorf("routine item %d out of range", itemIdx)
	}
	if sess.Routine[itemIdx].IsHeader {
		return fmt.Errorf("routine item %d is a section header", itemIdx)
	}
	sess.Routine[itemIdx].Done = done
	return s.flush()
}

// SetWeeklyPlan replaces the active plan with an uploaded one and
// marks the plan as overridden.
func (s *Store) SetWeeklyPlan(plan models.WeeklyPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.WeeklyPlan = plan
	s.doc.Settings.PlanOverridden = true
	return s.flush()
}

// ResetWeeklyPlan restores the built-in default plan.
func (s *Store) ResetWeeklyPlan() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.WeeklyPlan = models.DefaultWeeklyPlan()
	s.doc.Settings.PlanOverridden = false
	return s.flush()
}

// AddAttemptVideo links a clip to an attempt. ID and timestamp are
// assigned here.
func (s *Store) AddAttemptVideo(key models.VideoKey, video models.AttemptVideo) (models.AttemptVideo, error) {
	if key.SessionID == "" {
		return models.AttemptVideo{}, fmt.Errorf("video key needs a session id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	video.ID = uuid.NewString()
	video.AddedAt = s.now()
	k := key.String()
	s.doc.AttemptVideos[k] = append(s.doc.AttemptVideos[k], video)
	return video, s.flush()
}

// Restore replaces the whole document from a backup. The incoming
// document is migrated and normalized like one loaded from disk; the
// flush must succeed or memory is rolled back, since a restore the user
// cannot see persisted is worse than no restore.
func (s *Store) Restore(doc *models.Document) error {
	if doc == nil {
		return fmt.Errorf("backup document is empty")
	}
	doc.Migrate()

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.doc
	s.doc = doc
	if err := s.flush(); err != nil {
		s.doc = prev
		return err
	}
	return nil
}

// findLocked returns a pointer into the session slice. Callers hold mu.
func (s *Store) findLocked(id string) *models.Session {
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].ID == id {
			return &s.doc.Sessions[i]
		}
	}
	return nil
}
