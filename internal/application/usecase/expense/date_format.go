// Package expense contains expense-related use cases.
package expense

import (
	"fmt"
	"time"
)

// FormatRelativeDate renders a timestamp as a relative label for display:
// "Today 2:30 PM", "Yesterday 9:05 AM", "3 days ago", or a short month+day
// like "Jan 5" beyond six calendar days. The year is never shown, even
// across year boundaries.
//
// The comparison is by calendar day against now, not rolling 24-hour
// windows, so the label flips exactly at midnight.
func FormatRelativeDate(ts, now time.Time) string {
	ts = ts.In(now.Location())

	// Anchor both midnights in UTC so the difference is always a whole
	// number of days, even when the local zone has a DST transition in
	// between.
	tsDay := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	diffDays := int(today.Sub(tsDay).Hours() / 24)

	switch {
	case diffDays == 0:
		return "Today " + ts.Format("3:04 PM")
	case diffDays == 1:
		return "Yesterday " + ts.Format("3:04 PM")
	case diffDays >= 2 && diffDays <= 6:
		return fmt.Sprintf("%d days ago", diffDays)
	default:
		return ts.Format("Jan 2")
	}
}
