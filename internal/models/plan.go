package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Weekdays lists the seven plan keys in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// RoutineItem is one entry in a day's routine. Headers are section
// labels and are never checkable; everything else toggles a done flag
// when logged in a practice.
type RoutineItem struct {
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	IsHeader bool   `json:"isHeader"`
}

// DayPlan is one weekday's goals plus its ordered routine.
type DayPlan struct {
	Goals   string        `json:"goals"`
	Routine []RoutineItem `json:"routine"`
}

// WeeklyPlan maps weekday name to that day's plan. Exactly one plan is
// active at a time: the built-in default or a user-uploaded override.
type WeeklyPlan map[string]DayPlan

// DefaultWeeklyPlan returns the built-in training week.
func DefaultWeeklyPlan() WeeklyPlan {
	day := func(goals string, routine ...RoutineItem) DayPlan {
		return DayPlan{Goals: goals, Routine: routine}
	}
	header := func(text string) RoutineItem { return RoutineItem{Text: text, IsHeader: true} }
	item := func(text string) RoutineItem { return RoutineItem{Text: text} }

	return WeeklyPlan{
		"Monday": day("Short approach technique",
			header("Warmup:"),
			item("2 lap jog + hurdle mobility"),
			item("Sprint drills 3x30m"),
			header("Vault:"),
			item("6-step slide box takeoffs"),
			item("6-step vaults on soft bungee"),
			header("Strength:"),
			item("Rope climbs 3x"),
			item("Core circuit"),
		),
		"Tuesday": day("Speed and runway rhythm",
			header("Track:"),
			item("4x60m accelerations"),
			item("Pole runs 6x full approach"),
			item("Mid marks checked and recorded"),
		),
		"Wednesday": day("Full approach vaulting",
			header("Warmup:"),
			item("Dynamic stretch + sprint drills"),
			header("Vault:"),
			item("Full-run vaults, bar at opener"),
			item("Move standards back one setting"),
		),
		"Thursday": day("Recovery and gymnastics",
			header("Gym:"),
			item("Handstand holds 5x20s"),
			item("Bubka swings on high bar"),
			item("Light stretching"),
		),
		"Friday": day("Pre-meet tune-up",
			header("Runway:"),
			item("2-3 pop-ups from short run"),
			item("Confirm steps and mid mark"),
			item("Pack poles and spikes"),
		),
		"Saturday": day("Compete or simulate",
			item("Meet day or full simulation"),
			item("Log every attempt"),
		),
		"Sunday": day("Rest",
			item("Off / easy walk"),
		),
	}
}

// planFileDay is the shape of one day in an uploaded plan file.
// Pointers keep "missing" distinguishable from "empty".
type planFileDay struct {
	Goals   *string          `json:"goals"`
	Routine *json.RawMessage `json:"routine"`
}

// ParseWeeklyPlan validates an uploaded plan document and converts it
// to the internal shape. The file format is the legacy one: every
// routine entry is a plain string, and a trailing colon marks a
// section header. Any schema problem rejects the whole document; there
// is no partial apply.
func ParseWeeklyPlan(data []byte) (WeeklyPlan, error) {
	var raw map[string]planFileDay
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}

	for key := range raw {
		if !isWeekday(key) {
			return nil, fmt.Errorf("plan file: unknown key %q", key)
		}
	}

	plan := make(WeeklyPlan, len(Weekdays))
	for _, day := range Weekdays {
		d, ok := raw[day]
		if !ok {
			return nil, fmt.Errorf("plan file: missing day %q", day)
		}
		if d.Goals == nil {
			return nil, fmt.Errorf("plan file: %s: goals must be a string", day)
		}
		if d.Routine == nil {
			return nil, fmt.Errorf("plan file: %s: routine must be an array", day)
		}
		var entries []string
		if err := json.Unmarshal(*d.Routine, &entries); err != nil {
			return nil, fmt.Errorf("plan file: %s: routine must be an array of strings", day)
		}
		routine := make([]RoutineItem, 0, len(entries))
		for _, text := range entries {
			routine = append(routine, RoutineItem{
				Text:     text,
				IsHeader: strings.HasSuffix(strings.TrimSpace(text), ":"),
			})
		}
		plan[day] = DayPlan{Goals: *d.Goals, Routine: routine}
	}
	return plan, nil
}

func isWeekday(s string) bool {
	for _, d := range Weekdays {
		if s == d {
			return true
		}
	}
	return false
}
