package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unset marks a zero ("never set") measurement in display strings.
// Zero is not a valid length anywhere in the app, so it always renders
// as the em-dash rather than 0'0".
const Unset = "—"

// FormatFeetInches renders total inches as F'I" regardless of unit mode.
// Approach distance is always shown this way, even for metric athletes.
func FormatFeetInches(in float64) string {
	if sanitize(in) <= 0 {
		return Unset
	}
	fi := FromInches(in)
	return fmt.Sprintf("%d'%d\"", fi.Feet, fi.Inches)
}

// FormatStandards renders a standards setting for display.
// Imperial: F'I". Metric: rounded to the nearest centimeter.
func FormatStandards(in float64, u Unit) string {
	return formatCm(in, u)
}

// FormatTakeoff renders a takeoff mark for display.
func FormatTakeoff(in float64, u Unit) string {
	return formatCm(in, u)
}

func formatCm(in float64, u Unit) string {
	if sanitize(in) <= 0 {
		return Unset
	}
	if u == Metric {
		return fmt.Sprintf("%d cm", int(math.Round(InchesToCm(in))))
	}
	return FormatFeetInches(in)
}

// FormatBar renders a bar height for display.
// Imperial: F'I". Metric: meters with up to two decimals, trailing
// zeros stripped (4.00 → "4", 4.50 → "4.5"). The metric form carries
// no unit suffix; bar heights are read as meters by convention.
func FormatBar(in float64, u Unit) string {
	if sanitize(in) <= 0 {
		return Unset
	}
	if u == Metric {
		s := strconv.FormatFloat(InchesToMeters(in), 'f', 2, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		return s
	}
	return FormatFeetInches(in)
}
