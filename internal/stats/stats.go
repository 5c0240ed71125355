// Package stats derives numbers from the session collection. Nothing
// here is stored: the personal record and the setup averages are
// recomputed from the full session list whenever they are shown.
package stats

import (
	"github.com/claude/vaultlog/internal/models"
)

// PersonalRecord scans every meet session and returns the highest bar
// (in inches) with at least one clear. 0 means no clearance anywhere
// yet — the "no PR" sentinel, not a zero-height jump.
func PersonalRecord(sessions []models.Session) float64 {
	var pr float64
	for i := range sessions {
		s := &sessions[i]
		if s.Type != models.TypeMeet {
			continue
		}
		for j := range s.Attempts {
			b := &s.Attempts[j]
			if b.HeightIn > pr && b.Cleared() {
				pr = b.HeightIn
			}
		}
	}
	return pr
}

// Average is the arithmetic mean of vals, 0 for an empty list.
func Average(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// SetupAverages holds the mean setup numbers across all sessions.
type SetupAverages struct {
	TakeoffIn   float64 `json:"takeoffIn"`
	StandardsIn float64 `json:"standardsIn"`
	Steps       float64 `json:"steps"`
}

// ComputeSetupAverages averages takeoff, standards, and step count
// across sessions. Zero values are unset fields and are excluded
// rather than dragged into the mean.
func ComputeSetupAverages(sessions []models.Session) SetupAverages {
	var takeoffs, standards, steps []float64
	for i := range sessions {
		setup := sessions[i].Setup
		if setup.TakeoffIn > 0 {
			takeoffs = append(takeoffs, setup.TakeoffIn)
		}
		if setup.StandardsIn > 0 {
			standards = append(standards, setup.StandardsIn)
		}
		if setup.Steps > 0 {
			steps = append(steps, setup.Steps)
		}
	}
	return SetupAverages{
		TakeoffIn:   Average(takeoffs),
		StandardsIn: Average(standards),
		Steps:       Average(steps),
	}
}
