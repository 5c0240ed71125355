package models

import (
	"encoding/json"
	"testing"
)

func threeSlots() []Attempt {
	return []Attempt{{Index: 0}, {Index: 1}, {Index: 2}}
}

// TestRecordClearVoidsLaterAttempts verifies the cleared-bar rule is
// enforced when the result is recorded: a clear at slot 1 wipes slot 2.
func TestRecordClearVoidsLaterAttempts(t *testing.T) {
	h := HeightAttempt{HeightIn: 150, Attempts: threeSlots()}
	if err := h.Record(0, ResultMiss, KindBar); err != nil {
		t.Fatal(err)
	}
	if err := h.Record(2, ResultMiss, KindBar); err != nil {
		t.Fatal(err)
	}
	if err := h.Record(1, ResultClear, KindBar); err != nil {
		t.Fatal(err)
	}

	if h.Attempts[2].Result != ResultNone {
		t.Errorf("attempt after clear not voided: %+v", h.Attempts[2])
	}
	if got := len(h.VisibleAttempts()); got != 2 {
		t.Errorf("VisibleAttempts length = %d, want 2", got)
	}
}

// TestRecordRejectedAfterClear verifies attempts past the first clear
// cannot be edited at all.
func TestRecordRejectedAfterClear(t *testing.T) {
	h := HeightAttempt{HeightIn: 150, Attempts: threeSlots()}
	if err := h.Record(0, ResultClear, KindBar); err != nil {
		t.Fatal(err)
	}
	if err := h.Record(1, ResultMiss, KindBar); err == nil {
		t.Fatal("expected error recording past a clear")
	}
	// The cleared attempt itself stays editable: the athlete can
	// correct a mis-tap back to a miss.
	if err := h.Record(0, ResultMiss, KindBar); err != nil {
		t.Fatalf("could not amend the cleared attempt: %v", err)
	}
	if err := h.Record(1, ResultMiss, KindBar); err != nil {
		t.Fatalf("slot unlocked after amending clear: %v", err)
	}
}

// TestRecordRange verifies out-of-range slots and unknown results are
// rejected.
func TestRecordRange(t *testing.T) {
	h := HeightAttempt{Attempts: threeSlots()}
	if err := h.Record(3, ResultMiss, KindBar); err == nil {
		t.Error("expected error for index 3")
	}
	if err := h.Record(-1, ResultMiss, KindBar); err == nil {
		t.Error("expected error for index -1")
	}
	if err := h.Record(0, "wipeout", KindBar); err == nil {
		t.Error("expected error for unknown result")
	}
}

// TestNormalizeLegacyFlatFields verifies a legacy session with flat
// setup numbers upgrades into the canonical Setup without losing
// anything.
func TestNormalizeLegacyFlatFields(t *testing.T) {
	raw := `{
		"id": "legacy-1",
		"type": "practice",
		"steps": 6,
		"approachIn": 77,
		"takeoffIn": 126,
		"standardsIn": 18,
		"heightIn": 132
	}`
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatal(err)
	}
	s.Normalize()

	want := Setup{Steps: 6, ApproachIn: 77, TakeoffIn: 126, StandardsIn: 18, HeightIn: 132}
	if s.Setup != want {
		t.Errorf("Setup = %+v, want %+v", s.Setup, want)
	}
	if s.LegacyHeightIn != 0 {
		t.Errorf("legacy field survived normalization")
	}
}

// TestNormalizeBackfillsSetupFromPole verifies a modern session with
// no explicit setup takes its numbers from the first pole.
func TestNormalizeBackfillsSetupFromPole(t *testing.T) {
	s := Session{
		Type: TypeMeet,
		Poles: []Pole{{
			Brand: "Spirit", Length: "14'", Flex: "170", Weight: "155",
			Steps: 7, ApproachFeet: 6, ApproachInches: 5,
			TakeoffIn: 126, StandardsIn: 18,
		}},
	}
	s.Normalize()

	if s.Setup.Steps != 7 || s.Setup.ApproachIn != 77 || s.Setup.TakeoffIn != 126 {
		t.Errorf("Setup not backfilled from pole: %+v", s.Setup)
	}
}

// TestNormalizePadsAttemptSlots verifies every block ends up with
// exactly three indexed slots, whatever a legacy record stored.
func TestNormalizePadsAttemptSlots(t *testing.T) {
	s := Session{
		Type: TypeMeet,
		Attempts: []HeightAttempt{{
			HeightIn: 144,
			Attempts: []Attempt{{Index: 0, Result: ResultMiss}},
		}},
	}
	s.Normalize()

	got := s.Attempts[0].Attempts
	if len(got) != AttemptsPerHeight {
		t.Fatalf("attempts length = %d, want %d", len(got), AttemptsPerHeight)
	}
	for i, a := range got {
		if a.Index != i {
			t.Errorf("slot %d has index %d", i, a.Index)
		}
	}
}

// TestNormalizeReassertsClearTruncation verifies historical records
// that stored results past a clear are cleaned up on load.
func TestNormalizeReassertsClearTruncation(t *testing.T) {
	s := Session{
		Type: TypeMeet,
		Attempts: []HeightAttempt{{
			HeightIn: 150,
			Attempts: []Attempt{
				{Index: 0, Result: ResultClear},
				{Index: 1, Result: ResultMiss},
				{Index: 2, Result: ResultClear},
			},
		}},
	}
	s.Normalize()

	for i, a := range s.Attempts[0].Attempts[1:] {
		if a.Result != ResultNone {
			t.Errorf("slot %d survived past the clear: %+v", i+1, a)
		}
	}
}

// TestPoleKey verifies the dedup identity concatenation.
func TestPoleKey(t *testing.T) {
	p := Pole{Brand: "UCS Spirit", Length: "14'6\"", Flex: "16.8", Weight: "170"}
	if got := p.Key(); got != "UCS Spirit|14'6\"|16.8|170" {
		t.Errorf("Key() = %q", got)
	}
}

// TestFullName verifies whitespace handling when one side is missing.
func TestFullName(t *testing.T) {
	if got := (Athlete{FirstName: "Jo"}).FullName(); got != "Jo" {
		t.Errorf("FullName = %q, want %q", got, "Jo")
	}
	if got := (Athlete{}).FullName(); got != "" {
		t.Errorf("FullName = %q, want empty", got)
	}
}

// TestClearPositionIgnoresStaleIndexFields verifies the first-clear
// position comes from slice order, not the stored idx fields, so a
// block built in memory behaves the same before and after
// normalization.
func TestClearPositionIgnoresStaleIndexFields(t *testing.T) {
	b := HeightAttempt{Attempts: []Attempt{
		{Index: 7, Result: ResultMiss},
		{Index: 0, Result: ResultClear},
		{Index: 3},
	}}

	if got := len(b.VisibleAttempts()); got != 2 {
		t.Errorf("visible attempts = %d, want 2", got)
	}
	if err := b.Record(2, ResultMiss, KindBar); err == nil {
		t.Error("expected rejection of a slot after the clear")
	}
}
