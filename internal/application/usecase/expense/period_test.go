package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Period
		wantErr bool
	}{
		{name: "today", input: "today", want: PeriodToday},
		{name: "this-week", input: "this-week", want: PeriodThisWeek},
		{name: "this-month", input: "this-month", want: PeriodThisMonth},
		{name: "this-year", input: "this-year", want: PeriodThisYear},
		{name: "all", input: "all", want: PeriodAll},
		{name: "empty string means all", input: "", want: PeriodAll},
		{name: "unknown value is rejected", input: "last-week", wantErr: true},
		{name: "case sensitive", input: "Today", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParsePeriod_UnknownValueError(t *testing.T) {
	_, err := ParsePeriod("yesterday")
	if err != domainerror.ErrInvalidPeriod {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestFilterByPeriod(t *testing.T) {
	// Saturday, January 20th 2024. The week window is Sunday the 14th
	// through Saturday the 20th.
	now := time.Date(2024, time.January, 20, 15, 30, 0, 0, time.UTC)

	expenses := []*entity.Expense{
		testExpense("2024-01-20", 10), // today
		testExpense("2024-01-19", 20), // yesterday, same week
		testExpense("2024-01-14", 30), // first day of the week
		testExpense("2024-01-13", 40), // previous week, same month
		testExpense("2024-01-01", 50), // first day of the month
		testExpense("2023-12-31", 60), // previous year
		testExpense("2024-06-15", 70), // future date, same year
	}

	tests := []struct {
		name      string
		period    Period
		wantDates []string
	}{
		{
			name:      "today keeps only the current calendar day",
			period:    PeriodToday,
			wantDates: []string{"2024-01-20"},
		},
		{
			name:      "this-week runs Sunday through Saturday",
			period:    PeriodThisWeek,
			wantDates: []string{"2024-01-20", "2024-01-19", "2024-01-14"},
		},
		{
			name:      "this-month covers the full calendar month",
			period:    PeriodThisMonth,
			wantDates: []string{"2024-01-20", "2024-01-19", "2024-01-14", "2024-01-13", "2024-01-01"},
		},
		{
			name:      "this-year includes future dates within the year",
			period:    PeriodThisYear,
			wantDates: []string{"2024-01-20", "2024-01-19", "2024-01-14", "2024-01-13", "2024-01-01", "2024-06-15"},
		},
		{
			name:      "all returns everything",
			period:    PeriodAll,
			wantDates: []string{"2024-01-20", "2024-01-19", "2024-01-14", "2024-01-13", "2024-01-01", "2023-12-31", "2024-06-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPeriod(expenses, tt.period, now)
			if len(got) != len(tt.wantDates) {
				t.Fatalf("expected %d expenses, got %d", len(tt.wantDates), len(got))
			}
			for i, exp := range got {
				if exp.Date != tt.wantDates[i] {
					t.Errorf("position %d: expected date %s, got %s", i, tt.wantDates[i], exp.Date)
				}
			}
		})
	}
}

func TestFilterByPeriod_SkipsMalformedDates(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		testExpense("2024-01-20", 10),
		testExpense("not-a-date", 20),
		testExpense("", 30),
	}

	t.Run("bounded periods drop unparseable dates", func(t *testing.T) {
		got := FilterByPeriod(expenses, PeriodToday, now)
		if len(got) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(got))
		}
		if got[0].Date != "2024-01-20" {
			t.Errorf("expected the dated expense to survive, got %s", got[0].Date)
		}
	})

	t.Run("all keeps unparseable dates", func(t *testing.T) {
		got := FilterByPeriod(expenses, PeriodAll, now)
		if len(got) != 3 {
			t.Errorf("expected all 3 expenses, got %d", len(got))
		}
	})
}

func TestFilterByPeriod_AcceptsRFC3339Dates(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		testExpense("2024-01-20T08:15:00Z", 10),
	}

	got := FilterByPeriod(expenses, PeriodToday, now)
	if len(got) != 1 {
		t.Errorf("expected timestamped date to bucket by its calendar day, got %d expenses", len(got))
	}
}

func TestTotalNormalized(t *testing.T) {
	t.Run("sums converted amounts", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense("2024-01-01", 10.50),
			testExpense("2024-01-02", 20.25),
		}
		got := TotalNormalized(expenses)
		if want := decimal.NewFromFloat(30.75); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("falls back to the raw amount without a snapshot", func(t *testing.T) {
		exp := testExpense("2024-01-01", 10)
		exp.Conversion = nil
		exp.Amount = decimal.NewFromFloat(99.99)

		got := TotalNormalized([]*entity.Expense{exp})
		if want := decimal.NewFromFloat(99.99); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("empty set totals zero", func(t *testing.T) {
		if got := TotalNormalized(nil); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}
