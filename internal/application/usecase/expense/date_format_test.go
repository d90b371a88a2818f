package expense

import (
	"testing"
	"time"
)

func TestFormatRelativeDate(t *testing.T) {
	// Saturday, January 20th 2024, 3:00 PM UTC.
	now := time.Date(2024, time.January, 20, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{
			name: "same day shows Today with the time",
			ts:   time.Date(2024, time.January, 20, 14, 30, 0, 0, time.UTC),
			want: "Today 2:30 PM",
		},
		{
			name: "early morning same day",
			ts:   time.Date(2024, time.January, 20, 0, 5, 0, 0, time.UTC),
			want: "Today 12:05 AM",
		},
		{
			name: "previous day shows Yesterday even across midnight",
			ts:   time.Date(2024, time.January, 19, 23, 59, 0, 0, time.UTC),
			want: "Yesterday 11:59 PM",
		},
		{
			name: "two days back",
			ts:   time.Date(2024, time.January, 18, 10, 0, 0, 0, time.UTC),
			want: "2 days ago",
		},
		{
			name: "six days back is the last relative label",
			ts:   time.Date(2024, time.January, 14, 10, 0, 0, 0, time.UTC),
			want: "6 days ago",
		},
		{
			name: "seven days back switches to month and day",
			ts:   time.Date(2024, time.January, 13, 10, 0, 0, 0, time.UTC),
			want: "Jan 13",
		},
		{
			name: "previous year omits the year",
			ts:   time.Date(2023, time.December, 25, 10, 0, 0, 0, time.UTC),
			want: "Dec 25",
		},
		{
			name: "future date falls back to month and day",
			ts:   time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC),
			want: "Feb 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelativeDate(tt.ts, now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatRelativeDate_DaylightSavingTransition(t *testing.T) {
	// US clocks spring forward on March 10th 2024, so March 9th to March
	// 12th spans 71 hours rather than 72. The label still counts three
	// calendar days.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	now := time.Date(2024, time.March, 12, 10, 0, 0, 0, loc)
	ts := time.Date(2024, time.March, 9, 10, 0, 0, 0, loc)

	if got := FormatRelativeDate(ts, now); got != "3 days ago" {
		t.Errorf("expected %q, got %q", "3 days ago", got)
	}
}

func TestFormatRelativeDate_CalendarDayBoundary(t *testing.T) {
	// 00:30 now; a timestamp from 23:30 is one hour old but still labeled
	// Yesterday because the comparison works on calendar days.
	now := time.Date(2024, time.January, 20, 0, 30, 0, 0, time.UTC)
	ts := time.Date(2024, time.January, 19, 23, 30, 0, 0, time.UTC)

	if got := FormatRelativeDate(ts, now); got != "Yesterday 11:30 PM" {
		t.Errorf("expected %q, got %q", "Yesterday 11:30 PM", got)
	}
}
