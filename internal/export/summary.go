// Package export renders sessions into the plain-text block handed to
// the share sheet or mail composer. The output is for humans, not
// machines; nothing parses it back.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claude/vaultlog/internal/models"
	"github.com/claude/vaultlog/internal/stats"
	"github.com/claude/vaultlog/internal/units"
)

// Footer is the fixed last line of every shared summary.
const Footer = "Sent from VaultLog"

// SummaryText renders a session as blank-line-separated sections.
// Empty sections are dropped entirely, never rendered as bare headers.
func SummaryText(s *models.Session, set models.Settings) string {
	u := set.Units
	var sections []string
	add := func(lines ...string) {
		if block := strings.Join(lines, "\n"); strings.TrimSpace(block) != "" {
			sections = append(sections, block)
		}
	}

	kind := "PRACTICE"
	if s.Type == models.TypeMeet {
		kind = "MEET"
	}
	add(fmt.Sprintf("%s – %s", kind, s.Date.Format("Monday, January 2, 2006")))

	if line := athleteLine(set.Athlete); line != "" {
		add(line)
	}

	var basics []string
	if s.Type == models.TypeMeet && s.MeetName != "" {
		basics = append(basics, "Meet: "+s.MeetName)
	}
	if s.Goals != "" {
		basics = append(basics, "Goals: "+s.Goals)
	}
	add(basics...)

	if s.Type == models.TypeMeet {
		add(meetBlock(s, u)...)
	} else {
		add(routineBlock(s.Routine)...)
	}

	add(setupBlock(s.Setup, u)...)

	if s.Notes != "" {
		add("Notes: " + s.Notes)
	}

	add(Footer)
	return strings.Join(sections, "\n\n")
}

func athleteLine(a models.Athlete) string {
	name := a.FullName()
	if name == "" {
		return ""
	}
	line := "Athlete: " + name
	if a.Year != "" {
		line += fmt.Sprintf(" (Year %s)", a.Year)
	}
	return line + " – " + a.Level.Display()
}

// meetBlock lists every bar with its attempt marks, then the best
// clearance of the day.
func meetBlock(s *models.Session, u units.Unit) []string {
	var lines []string
	for i := range s.Attempts {
		b := &s.Attempts[i]
		var marks []string
		for _, a := range b.VisibleAttempts() {
			switch a.Result {
			case models.ResultClear:
				marks = append(marks, "O")
			case models.ResultMiss:
				marks = append(marks, "X")
			}
		}
		lines = append(lines, fmt.Sprintf("%d. %s   %s",
			i+1, units.FormatBar(b.HeightIn, u), strings.Join(marks, " ")))
	}
	if len(lines) == 0 {
		return nil
	}
	today := stats.PersonalRecord([]models.Session{*s})
	lines = append(lines, "PR (today): "+units.FormatBar(today, u))
	return lines
}

// routineBlock renders the practice's routine snapshot as a checklist.
func routineBlock(routine []models.RoutineItem) []string {
	var lines []string
	for _, item := range routine {
		switch {
		case item.IsHeader:
			lines = append(lines, "* "+item.Text)
		case item.Done:
			lines = append(lines, "[x] "+item.Text)
		default:
			lines = append(lines, "[ ] "+item.Text)
		}
	}
	return lines
}

// setupBlock renders the setup numbers in their fixed order, skipping
// whatever was never set.
func setupBlock(setup models.Setup, u units.Unit) []string {
	var lines []string
	if setup.Steps > 0 {
		lines = append(lines, "Steps: "+strconv.FormatFloat(setup.Steps, 'f', -1, 64))
	}
	if setup.ApproachIn > 0 {
		lines = append(lines, "Approach: "+units.FormatFeetInches(setup.ApproachIn))
	}
	if setup.TakeoffIn > 0 {
		lines = append(lines, "Takeoff: "+units.FormatTakeoff(setup.TakeoffIn, u))
	}
	if setup.StandardsIn > 0 {
		lines = append(lines, "Standards: "+units.FormatStandards(setup.StandardsIn, u))
	}
	if setup.HeightIn > 0 {
		lines = append(lines, "Bar: "+units.FormatBar(setup.HeightIn, u))
	}
	return lines
}
