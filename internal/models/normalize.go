package models

import "math"

// coerce maps NaN/Inf/negative junk from old records to 0.
func coerce(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}

// Normalize upgrades a session read from storage into the canonical
// shape, in place. It is the single adapter between historical schema
// versions and the rest of the code: everything downstream can assume
// heights-list sessions with a populated Setup.
func (s *Session) Normalize() {
	if !s.Type.IsValid() {
		s.Type = TypePractice
	}

	// Attempt blocks always carry exactly three slots with stable
	// indices, whatever a legacy record stored.
	normalizeBlocks(s.Heights)
	normalizeBlocks(s.Attempts)

	s.Setup = Setup{
		Steps:       coerce(s.Setup.Steps),
		ApproachIn:  coerce(s.Setup.ApproachIn),
		TakeoffIn:   coerce(s.Setup.TakeoffIn),
		StandardsIn: coerce(s.Setup.StandardsIn),
		HeightIn:    coerce(s.Setup.HeightIn),
	}

	// Legacy flat-field records have no heights list; their setup
	// numbers live directly on the session.
	if s.Setup == (Setup{}) {
		if legacy := (Setup{
			Steps:       coerce(s.LegacySteps),
			ApproachIn:  coerce(s.LegacyApproachIn),
			TakeoffIn:   coerce(s.LegacyTakeoffIn),
			StandardsIn: coerce(s.LegacyStandardsIn),
			HeightIn:    coerce(s.LegacyHeightIn),
		}); legacy != (Setup{}) {
			s.Setup = legacy
		} else if len(s.Poles) > 0 {
			p := s.Poles[0]
			s.Setup = Setup{
				Steps:       coerce(p.Steps),
				ApproachIn:  coerce(p.ApproachIn()),
				TakeoffIn:   coerce(p.TakeoffIn),
				StandardsIn: coerce(p.StandardsIn),
			}
		}
	}

	// Written records carry the canonical shape only.
	s.LegacySteps = 0
	s.LegacyApproachIn = 0
	s.LegacyTakeoffIn = 0
	s.LegacyStandardsIn = 0
	s.LegacyHeightIn = 0
}

func normalizeBlocks(blocks []HeightAttempt) {
	for i := range blocks {
		b := &blocks[i]
		b.HeightIn = coerce(b.HeightIn)
		if b.PoleIdx < 0 {
			b.PoleIdx = 0
		}
		for len(b.Attempts) < AttemptsPerHeight {
			b.Attempts = append(b.Attempts, Attempt{})
		}
		b.Attempts = b.Attempts[:AttemptsPerHeight]
		for j := range b.Attempts {
			a := &b.Attempts[j]
			a.Index = j
			if a.Result != ResultClear && a.Result != ResultMiss {
				a.Result = ResultNone
			}
			if a.Kind != KindBungee {
				a.Kind = KindBar
			}
		}
		// Re-assert the truncation invariant on data that predates
		// its enforcement at record time.
		if ci := b.clearIndex(); ci >= 0 {
			for j := ci + 1; j < len(b.Attempts); j++ {
				b.Attempts[j] = Attempt{Index: j, Kind: b.Attempts[j].Kind}
			}
		}
	}
}
