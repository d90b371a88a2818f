// Package model defines the serialized persistence representations.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// ExpenseModel is the JSON shape of one expense inside the persisted
// collection blob. Field names are part of the stored format and must not
// change without a migration.
type ExpenseModel struct {
	ID                 string                   `json:"id"`
	Category           string                   `json:"category"`
	Amount             decimal.Decimal          `json:"amount"`
	Currency           string                   `json:"currency"`
	Date               string                   `json:"date"`
	Receipt            string                   `json:"receipt,omitempty"`
	CreatedAt          time.Time                `json:"createdAt"`
	CurrencyConversion *ConversionSnapshotModel `json:"currencyConversion,omitempty"`
}

// ConversionSnapshotModel is the JSON shape of the conversion snapshot.
type ConversionSnapshotModel struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	USDAmount        decimal.Decimal `json:"usdAmount"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	LastUpdated      time.Time       `json:"lastUpdated"`
}

// FromExpenseEntity converts a domain expense to its persisted form.
func FromExpenseEntity(exp *entity.Expense) ExpenseModel {
	m := ExpenseModel{
		ID:        exp.ID.String(),
		Category:  exp.CategoryID,
		Amount:    exp.Amount,
		Currency:  exp.Currency,
		Date:      exp.Date,
		Receipt:   exp.Receipt,
		CreatedAt: exp.CreatedAt,
	}
	if exp.Conversion != nil {
		m.CurrencyConversion = &ConversionSnapshotModel{
			OriginalAmount:   exp.Conversion.OriginalAmount,
			OriginalCurrency: exp.Conversion.OriginalCurrency,
			USDAmount:        exp.Conversion.USDAmount,
			ExchangeRate:     exp.Conversion.ExchangeRate,
			LastUpdated:      exp.Conversion.LastUpdated,
		}
	}
	return m
}

// ToExpenseEntity converts a persisted expense back to its domain form.
// An unparseable id yields ok=false so the caller can skip the record
// instead of failing the whole collection.
func (m ExpenseModel) ToExpenseEntity() (*entity.Expense, bool) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, false
	}
	exp := &entity.Expense{
		ID:         id,
		CategoryID: m.Category,
		Amount:     m.Amount,
		Currency:   m.Currency,
		Date:       m.Date,
		Receipt:    m.Receipt,
		CreatedAt:  m.CreatedAt,
	}
	if m.CurrencyConversion != nil {
		exp.Conversion = &entity.ConversionSnapshot{
			OriginalAmount:   m.CurrencyConversion.OriginalAmount,
			OriginalCurrency: m.CurrencyConversion.OriginalCurrency,
			USDAmount:        m.CurrencyConversion.USDAmount,
			ExchangeRate:     m.CurrencyConversion.ExchangeRate,
			LastUpdated:      m.CurrencyConversion.LastUpdated,
		}
	}
	return exp, true
}
