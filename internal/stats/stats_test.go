package stats

import (
	"testing"

	"github.com/claude/vaultlog/internal/models"
)

func meetSession(blocks ...models.HeightAttempt) models.Session {
	return models.Session{Type: models.TypeMeet, Attempts: blocks}
}

func block(heightIn float64, results ...models.AttemptResult) models.HeightAttempt {
	b := models.HeightAttempt{HeightIn: heightIn}
	for i, r := range results {
		b.Attempts = append(b.Attempts, models.Attempt{Index: i, Result: r, Kind: models.KindBar})
	}
	return b
}

// TestPersonalRecordEmpty verifies the no-sessions case returns the
// documented "no PR yet" sentinel.
func TestPersonalRecordEmpty(t *testing.T) {
	if got := PersonalRecord(nil); got != 0 {
		t.Errorf("PersonalRecord(nil) = %v, want 0", got)
	}
}

// TestPersonalRecordSkipsUncleared verifies a height with three misses
// does not count: the PR comes from the highest bar actually cleared.
func TestPersonalRecordSkipsUncleared(t *testing.T) {
	s := meetSession(
		block(144, models.ResultMiss, models.ResultClear),
		block(150, models.ResultMiss, models.ResultMiss, models.ResultMiss),
	)
	if got := PersonalRecord([]models.Session{s}); got != 144 {
		t.Errorf("PersonalRecord = %v, want 144", got)
	}
}

// TestPersonalRecordIgnoresPractice verifies practice heights never
// set a PR; only meet sessions count.
func TestPersonalRecordIgnoresPractice(t *testing.T) {
	practice := models.Session{
		Type:    models.TypePractice,
		Heights: []models.HeightAttempt{block(170, models.ResultClear)},
	}
	if got := PersonalRecord([]models.Session{practice}); got != 0 {
		t.Errorf("PersonalRecord = %v, want 0", got)
	}
}

// TestPersonalRecordMonotonic verifies adding more cleared heights
// never lowers the PR.
func TestPersonalRecordMonotonic(t *testing.T) {
	sessions := []models.Session{meetSession(block(120, models.ResultClear))}
	prev := PersonalRecord(sessions)
	for _, h := range []float64{110, 132, 126, 150} {
		sessions = append(sessions, meetSession(block(h, models.ResultMiss, models.ResultClear)))
		pr := PersonalRecord(sessions)
		if pr < prev {
			t.Fatalf("PR decreased from %v to %v after adding height %v", prev, pr, h)
		}
		prev = pr
	}
	if prev != 150 {
		t.Errorf("final PR = %v, want 150", prev)
	}
}

// TestAverageEmpty verifies the division-by-zero guard.
func TestAverageEmpty(t *testing.T) {
	if got := Average(nil); got != 0 {
		t.Errorf("Average(nil) = %v, want 0", got)
	}
}

// TestAverageSingle verifies a one-element list averages to itself.
func TestAverageSingle(t *testing.T) {
	if got := Average([]float64{42.5}); got != 42.5 {
		t.Errorf("Average([42.5]) = %v, want 42.5", got)
	}
}

// TestAverageOrderInvariant verifies the mean does not depend on input
// order.
func TestAverageOrderInvariant(t *testing.T) {
	a := Average([]float64{1, 2, 3, 10})
	b := Average([]float64{10, 3, 2, 1})
	if a != b {
		t.Errorf("Average order-dependent: %v vs %v", a, b)
	}
}

// TestComputeSetupAveragesExcludesUnset verifies zero (unset) setup
// fields are excluded from the mean rather than dragged in as zeros.
func TestComputeSetupAveragesExcludesUnset(t *testing.T) {
	sessions := []models.Session{
		{Type: models.TypePractice, Setup: models.Setup{TakeoffIn: 120, Steps: 6}},
		{Type: models.TypePractice, Setup: models.Setup{TakeoffIn: 130}},
		{Type: models.TypeMeet, Setup: models.Setup{}},
	}
	avgs := ComputeSetupAverages(sessions)
	if avgs.TakeoffIn != 125 {
		t.Errorf("avg takeoff = %v, want 125", avgs.TakeoffIn)
	}
	if avgs.Steps != 6 {
		t.Errorf("avg steps = %v, want 6", avgs.Steps)
	}
	if avgs.StandardsIn != 0 {
		t.Errorf("avg standards = %v, want 0", avgs.StandardsIn)
	}
}
