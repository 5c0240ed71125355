package models

// SchemaVersion tags the persisted document. Version 1 predates the
// heights-list session shape; loading a v1 (or untagged) document runs
// the per-session normalizer before anything reads it.
const SchemaVersion = 2

// Document is the whole persisted state: everything the app knows,
// written as one versioned blob, replaced atomically on every change.
type Document struct {
	Version       int                       `json:"version"`
	Settings      Settings                  `json:"settings"`
	Sessions      []Session                 `json:"sessions"`
	WeeklyPlan    WeeklyPlan                `json:"weeklyPlan"`
	AttemptVideos map[string][]AttemptVideo `json:"attemptVideos"`
}

// NewDocument returns the state a fresh install starts from.
func NewDocument() *Document {
	return &Document{
		Version:       SchemaVersion,
		Settings:      DefaultSettings(),
		Sessions:      []Session{},
		WeeklyPlan:    DefaultWeeklyPlan(),
		AttemptVideos: map[string][]AttemptVideo{},
	}
}

// Migrate backfills absent top-level keys and normalizes every session
// into the canonical shape, then stamps the current schema version.
// It is total: whatever a historical version persisted, the result is
// readable by current code.
func (d *Document) Migrate() {
	if !d.Settings.Units.IsValid() {
		d.Settings.Units = DefaultSettings().Units
	}
	if !d.Settings.Athlete.Level.IsValid() {
		d.Settings.Athlete.Level = LevelHighSchool
	}
	if d.Sessions == nil {
		d.Sessions = []Session{}
	}
	if d.WeeklyPlan == nil {
		d.WeeklyPlan = DefaultWeeklyPlan()
		d.Settings.PlanOverridden = false
	}
	if d.AttemptVideos == nil {
		d.AttemptVideos = map[string][]AttemptVideo{}
	}
	for i := range d.Sessions {
		d.Sessions[i].Normalize()
	}
	d.Version = SchemaVersion
}
