// Package models defines the vault log's domain types: athlete profile,
// settings, weekly plan, poles, and practice/meet sessions.
package models

import (
	"strings"

	"github.com/claude/vaultlog/internal/units"
)

// Level is the athlete's competition level.
type Level string

const (
	LevelHighSchool Level = "highschool"
	LevelCollege    Level = "college"
)

// IsValid reports whether l is a known level.
func (l Level) IsValid() bool {
	return l == LevelHighSchool || l == LevelCollege
}

// Display returns the human-readable form used in summaries.
func (l Level) Display() string {
	if l == LevelCollege {
		return "College"
	}
	return "High School"
}

// Athlete is the profile edited field-by-field from the settings screen.
// It always exists; unset fields are empty strings.
type Athlete struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Year      string `json:"year"`
	Level     Level  `json:"level"`
}

// FullName joins first and last name, trimming when one side is empty.
func (a Athlete) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
}

// Settings is the process-wide singleton preference record.
type Settings struct {
	Units          units.Unit `json:"units"`
	Athlete        Athlete    `json:"athlete"`
	PlanOverridden bool       `json:"planOverridden"`
	WatermarkURI   string     `json:"watermarkUri"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Units: units.Imperial,
		Athlete: Athlete{
			Level: LevelHighSchool,
		},
	}
}
