package models

import (
	"fmt"
	"time"
)

// SessionType discriminates the two kinds of logged session.
type SessionType string

const (
	TypePractice SessionType = "practice"
	TypeMeet     SessionType = "meet"
)

// IsValid reports whether t is a known session type.
func (t SessionType) IsValid() bool {
	return t == TypePractice || t == TypeMeet
}

// AttemptResult is the outcome of a single attempt at a bar.
type AttemptResult string

const (
	ResultClear AttemptResult = "clear"
	ResultMiss  AttemptResult = "miss"
	// ResultNone marks an attempt slot that has not been taken.
	ResultNone AttemptResult = ""
)

// AttemptKind distinguishes a real bar from a bungee.
type AttemptKind string

const (
	KindBar    AttemptKind = "bar"
	KindBungee AttemptKind = "bungee"
)

// Attempt is one of the three slots at a given height.
type Attempt struct {
	Index  int           `json:"idx"`
	Result AttemptResult `json:"result"`
	Kind   AttemptKind   `json:"type"`
}

// AttemptsPerHeight is the fixed number of attempt slots per bar height.
const AttemptsPerHeight = 3

// HeightAttempt is one bar height within a session, with its three
// attempt slots and the pole it was jumped on.
type HeightAttempt struct {
	ID       string    `json:"id"`
	HeightIn float64   `json:"heightIn"`
	PoleIdx  int       `json:"poleIdx"`
	Attempts []Attempt `json:"attempts"`
}

// clearIndex returns the slice position of the first clear, or -1.
// Position, not the stored Index field: blocks built in memory may not
// have been normalized yet.
func (h *HeightAttempt) clearIndex() int {
	for i, a := range h.Attempts {
		if a.Result == ResultClear {
			return i
		}
	}
	return -1
}

// Cleared reports whether any attempt at this height was a clear.
func (h *HeightAttempt) Cleared() bool {
	return h.clearIndex() >= 0
}

// VisibleAttempts returns the attempts up to and including the first
// clear. A cleared bar ends the sequence at that height; later slots
// are neither shown nor editable.
func (h *HeightAttempt) VisibleAttempts() []Attempt {
	if ci := h.clearIndex(); ci >= 0 {
		return h.Attempts[:ci+1]
	}
	return h.Attempts
}

// Record sets the result of the attempt at idx. The truncation rule is
// enforced here rather than at render time: recording past a clear is
// rejected, and recording a clear voids every later slot.
func (h *HeightAttempt) Record(idx int, result AttemptResult, kind AttemptKind) error {
	if idx < 0 || idx >= len(h.Attempts) {
		return fmt.Errorf("attempt index %d out of range", idx)
	}
	if result != ResultClear && result != ResultMiss && result != ResultNone {
		return fmt.Errorf("unknown attempt result %q", result)
	}
	if ci := h.clearIndex(); ci >= 0 && idx > ci {
		return fmt.Errorf("height already cleared at attempt %d", ci+1)
	}
	if kind == "" {
		kind = KindBar
	}
	h.Attempts[idx] = Attempt{Index: idx, Result: result, Kind: kind}
	if result == ResultClear {
		for i := idx + 1; i < len(h.Attempts); i++ {
			h.Attempts[i] = Attempt{Index: i, Kind: h.Attempts[i].Kind}
		}
	}
	return nil
}

// Setup is the per-session setup snapshot used by summaries and the
// averages screen. All lengths are inches; zero means unset.
type Setup struct {
	Steps       float64 `json:"steps"`
	ApproachIn  float64 `json:"approachIn"`
	TakeoffIn   float64 `json:"takeoffIn"`
	StandardsIn float64 `json:"standardsIn"`
	HeightIn    float64 `json:"heightIn"`
}

// Session is one logged practice or meet. The canonical (written) shape
// always carries the heights list and a backfilled Setup; the legacy
// flat fields are accepted on read and folded in by Normalize.
type Session struct {
	ID    string      `json:"id"`
	Type  SessionType `json:"type"`
	Date  time.Time   `json:"date"`
	Goals string      `json:"goals"`
	Notes string      `json:"notes"`
	Poles []Pole      `json:"poles"`
	Setup Setup       `json:"setup"`

	// Practice only.
	DayName string          `json:"dayName,omitempty"`
	Routine []RoutineItem   `json:"routine,omitempty"`
	Heights []HeightAttempt `json:"heights,omitempty"`

	// Meet only.
	MeetName string          `json:"meetName,omitempty"`
	Attempts []HeightAttempt `json:"attempts,omitempty"`

	// Legacy flat fields from pre-heights-list schema versions.
	// Read-only: Normalize folds them into Setup and they are never
	// written back.
	LegacySteps       float64 `json:"steps,omitempty"`
	LegacyApproachIn  float64 `json:"approachIn,omitempty"`
	LegacyTakeoffIn   float64 `json:"takeoffIn,omitempty"`
	LegacyStandardsIn float64 `json:"standardsIn,omitempty"`
	LegacyHeightIn    float64 `json:"heightIn,omitempty"`
}

// Clone returns a deep copy of the session. Anything handed out of the
// store crosses a lock boundary as a clone, so the in-place mutators
// can never touch data a reader is still encoding.
func (s *Session) Clone() Session {
	out := *s
	out.Poles = append([]Pole(nil), s.Poles...)
	out.Routine = append([]RoutineItem(nil), s.Routine...)
	out.Heights = cloneBlocks(s.Heights)
	out.Attempts = cloneBlocks(s.Attempts)
	return out
}

func cloneBlocks(blocks []HeightAttempt) []HeightAttempt {
	if blocks == nil {
		return nil
	}
	out := make([]HeightAttempt, len(blocks))
	for i, b := range blocks {
		b.Attempts = append([]Attempt(nil), b.Attempts...)
		out[i] = b
	}
	return out
}

// Blocks returns the session's height-attempt list regardless of type
// (practice names it heights, meet names it attempts).
func (s *Session) Blocks() []HeightAttempt {
	if s.Type == TypeMeet {
		return s.Attempts
	}
	return s.Heights
}

// Block finds the height-attempt block with the given id, or nil.
func (s *Session) Block(id string) *HeightAttempt {
	blocks := s.Heights
	if s.Type == TypeMeet {
		blocks = s.Attempts
	}
	for i := range blocks {
		if blocks[i].ID == id {
			return &blocks[i]
		}
	}
	return nil
}
