// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// CurrencyConverter converts an amount in a source currency into the
// reporting currency.
//
// Convert never fails: when rates cannot be fetched or the source currency
// has no rate, the snapshot falls back to a 1:1 conversion. Totals built on
// such snapshots are best-effort during provider outages.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency string) *entity.ConversionSnapshot
}
