package nav

import (
	"fmt"
	"math"
)

// FormatDistanceKm renders a route total as kilometers with one decimal.
func FormatDistanceKm(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration renders a route total rounded to the nearest minute,
// switching to hours+minutes at the hour mark.
func FormatDuration(seconds float64) string {
	minutes := int(math.Round(seconds / 60))
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%d ó %d p", hours, mins)
	}
	return fmt.Sprintf("%d perc", mins)
}

// FormatStepDistance renders a per-step distance: whole meters below a
// kilometer, one-decimal kilometers from there up.
func FormatStepDistance(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", meters/1000)
	}
	return fmt.Sprintf("%d m", int(math.Round(meters)))
}
