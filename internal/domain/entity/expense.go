// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for expense dates.
// The date is user-selected and distinct from CreatedAt; all period
// bucketing runs against it.
const DateLayout = "2006-01-02"

// Expense represents a single recorded expense.
type Expense struct {
	ID         uuid.UUID
	CategoryID string
	Amount     decimal.Decimal
	Currency   string
	Date       string // calendar date, DateLayout
	Receipt    string // optional data URI, passed through uninterpreted
	CreatedAt  time.Time
	Conversion *ConversionSnapshot
}

// ConversionSnapshot records the currency conversion captured once at
// creation time. It is never recomputed afterwards.
type ConversionSnapshot struct {
	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	USDAmount        decimal.Decimal
	ExchangeRate     decimal.Decimal
	LastUpdated      time.Time
}

// NewExpense creates a new Expense entity with a fresh ID and creation
// timestamp. The conversion snapshot is attached by the caller after the
// converter has run.
func NewExpense(categoryID string, amount decimal.Decimal, currency, date, receipt string) *Expense {
	return &Expense{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     amount,
		Currency:   currency,
		Date:       date,
		Receipt:    receipt,
		CreatedAt:  time.Now().UTC(),
	}
}

// NormalizedAmount returns the reporting-currency amount for the expense:
// the snapshot's converted amount when present, otherwise the raw amount.
// Totals built from it are best-effort when conversions are missing.
func (e *Expense) NormalizedAmount() decimal.Decimal {
	if e.Conversion != nil {
		return e.Conversion.USDAmount
	}
	return e.Amount
}

// ParseDate parses the expense's calendar date. Dates are tolerated in
// either plain calendar or RFC 3339 form; anything else is an error and
// the record is skipped by period filtering.
func (e *Expense) ParseDate() (time.Time, error) {
	if t, err := time.Parse(DateLayout, e.Date); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, e.Date)
}
