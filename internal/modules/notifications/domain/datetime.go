package domain

import (
	"fmt"
	"time"
)

// FormatDateTime renders an RFC3339 timestamp as a human-readable phrase such
// as "2nd December 2025 at 12:00 PM". Times are rendered in UTC.
func FormatDateTime(iso string) (string, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", fmt.Errorf("parse dateTime %q: %w", iso, err)
	}
	t = t.UTC()

	day := t.Day()
	return fmt.Sprintf("%d%s %s %d at %s",
		day, ordinalSuffix(day), t.Month().String(), t.Year(), t.Format("3:04 PM")), nil
}

func ordinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}
