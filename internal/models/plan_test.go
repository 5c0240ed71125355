package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func validPlanJSON(t *testing.T) []byte {
	t.Helper()
	plan := map[string]any{}
	for _, day := range Weekdays {
		plan[day] = map[string]any{
			"goals":   "work on " + strings.ToLower(day),
			"routine": []string{"Warmup:", "2 lap jog", "Drills"},
		}
	}
	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// TestParseWeeklyPlanValid verifies a well-formed upload with all seven
// days parses, and trailing-colon entries become section headers.
func TestParseWeeklyPlanValid(t *testing.T) {
	plan, err := ParseWeeklyPlan(validPlanJSON(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	mon := plan["Monday"]
	if mon.Goals != "work on monday" {
		t.Errorf("goals = %q", mon.Goals)
	}
	if len(mon.Routine) != 3 {
		t.Fatalf("routine has %d items, want 3", len(mon.Routine))
	}
	if !mon.Routine[0].IsHeader {
		t.Errorf("%q not detected as header", mon.Routine[0].Text)
	}
	if mon.Routine[1].IsHeader || mon.Routine[2].IsHeader {
		t.Errorf("plain items flagged as headers: %+v", mon.Routine)
	}
}

// TestParseWeeklyPlanMissingDay verifies a document without Sunday is
// rejected wholesale.
func TestParseWeeklyPlanMissingDay(t *testing.T) {
	var doc map[string]any
	if err := json.Unmarshal(validPlanJSON(t), &doc); err != nil {
		t.Fatal(err)
	}
	delete(doc, "Sunday")
	data, _ := json.Marshal(doc)

	if _, err := ParseWeeklyPlan(data); err == nil {
		t.Fatal("expected error for missing Sunday")
	}
}

// TestParseWeeklyPlanRoutineNotArray verifies a routine given as a
// string instead of an array is rejected.
func TestParseWeeklyPlanRoutineNotArray(t *testing.T) {
	var doc map[string]map[string]any
	if err := json.Unmarshal(validPlanJSON(t), &doc); err != nil {
		t.Fatal(err)
	}
	doc["Tuesday"]["routine"] = "not an array"
	data, _ := json.Marshal(doc)

	if _, err := ParseWeeklyPlan(data); err == nil {
		t.Fatal("expected error for routine as string")
	}
}

// TestParseWeeklyPlanGoalsNotString verifies non-string goals are
// rejected.
func TestParseWeeklyPlanGoalsNotString(t *testing.T) {
	var doc map[string]map[string]any
	if err := json.Unmarshal(validPlanJSON(t), &doc); err != nil {
		t.Fatal(err)
	}
	doc["Friday"]["goals"] = 42
	data, _ := json.Marshal(doc)

	if _, err := ParseWeeklyPlan(data); err == nil {
		t.Fatal("expected error for numeric goals")
	}
}

// TestParseWeeklyPlanUnknownKey verifies a stray top-level key is a
// schema mismatch, not silently ignored.
func TestParseWeeklyPlanUnknownKey(t *testing.T) {
	var doc map[string]any
	if err := json.Unmarshal(validPlanJSON(t), &doc); err != nil {
		t.Fatal(err)
	}
	doc["Funday"] = map[string]any{"goals": "", "routine": []string{}}
	data, _ := json.Marshal(doc)

	if _, err := ParseWeeklyPlan(data); err == nil {
		t.Fatal("expected error for unknown day key")
	}
}

// TestParseWeeklyPlanMalformedJSON verifies garbage input errors
// instead of panicking.
func TestParseWeeklyPlanMalformedJSON(t *testing.T) {
	if _, err := ParseWeeklyPlan([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

// TestDefaultWeeklyPlanComplete verifies the built-in plan covers all
// seven days; the reset path depends on it.
func TestDefaultWeeklyPlanComplete(t *testing.T) {
	plan := DefaultWeeklyPlan()
	for _, day := range Weekdays {
		d, ok := plan[day]
		if !ok {
			t.Errorf("default plan missing %s", day)
			continue
		}
		if len(d.Routine) == 0 {
			t.Errorf("default plan %s has empty routine", day)
		}
	}
}
