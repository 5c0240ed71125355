// Package units converts and formats the lengths used around a vault pit.
// Heights and marks are stored in inches everywhere; every other unit is
// a display concern.
package units

import "math"

// Unit is the athlete's display unit preference.
type Unit string

const (
	Imperial Unit = "imperial"
	Metric   Unit = "metric"
)

// IsValid reports whether u is a known unit mode.
func (u Unit) IsValid() bool {
	return u == Imperial || u == Metric
}

// FeetInches is a feet/inches pair as entered on a form.
type FeetInches struct {
	Feet   int `json:"feet"`
	Inches int `json:"inches"`
}

// sanitize coerces NaN/Inf to 0 so the conversion functions stay total.
// Height fields can arrive from any historical schema version.
func sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// InchesToCm converts inches to centimeters.
func InchesToCm(in float64) float64 { return sanitize(in) * 2.54 }

// CmToInches converts centimeters to inches.
func CmToInches(cm float64) float64 { return sanitize(cm) / 2.54 }

// InchesToMeters converts inches to meters.
func InchesToMeters(in float64) float64 { return sanitize(in) * 0.0254 }

// MetersToInches converts meters to inches.
func MetersToInches(m float64) float64 { return sanitize(m) / 0.0254 }

// ToInches flattens a feet/inches pair into total inches, clamped at 0.
func ToInches(fi FeetInches) float64 {
	total := float64(fi.Feet*12 + fi.Inches)
	if total < 0 {
		return 0
	}
	return total
}

// FromInches splits a total-inch value into a feet/inches pair. The inch
// component is rounded, with a carry into feet when it rounds up to 12.
// Negative and non-finite input clamps to 0.
func FromInches(total float64) FeetInches {
	total = sanitize(total)
	if total < 0 {
		total = 0
	}
	feet := int(math.Floor(total / 12))
	inches := int(math.Round(total - float64(feet)*12))
	if inches == 12 {
		feet++
		inches = 0
	}
	return FeetInches{Feet: feet, Inches: inches}
}
