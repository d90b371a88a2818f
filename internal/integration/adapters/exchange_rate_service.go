// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// exchangeRateService implements adapter.CurrencyConverter against an HTTP
// rate provider. The provider quotes rates as "units of X per 1 reporting
// unit"; they are inverted before use so that
// normalized = amount * rate[currency].
type exchangeRateService struct {
	client            *http.Client
	url               string
	reportingCurrency string

	// Optional short-lived cache of the inverted rate map. TTL zero
	// disables caching and every Convert refetches.
	cacheTTL time.Duration
	mu       sync.Mutex
	cached   map[string]decimal.Decimal
	cachedAt time.Time
}

// NewExchangeRateService creates a new currency converter backed by the
// given rate provider endpoint.
func NewExchangeRateService(url, reportingCurrency string, timeout, cacheTTL time.Duration) adapter.CurrencyConverter {
	return &exchangeRateService{
		client:            &http.Client{Timeout: timeout},
		url:               url,
		reportingCurrency: reportingCurrency,
		cacheTTL:          cacheTTL,
	}
}

// ratesResponse is the provider's wire format. Rate values are decoded
// loosely so a single malformed entry is discarded instead of failing the
// whole response.
type ratesResponse struct {
	Rates map[string]json.RawMessage `json:"rates"`
}

// Convert converts amount from fromCurrency into the reporting currency.
// It never fails: any fetch/parse error or missing rate degrades to a 1:1
// snapshot, which intentionally treats the foreign amount as already
// normalized rather than surfacing the outage to the caller.
func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency string) *entity.ConversionSnapshot {
	if fromCurrency == s.reportingCurrency {
		return s.snapshot(amount, fromCurrency, decimal.NewFromInt(1), amount)
	}

	rates, err := s.rates(ctx)
	if err != nil {
		slog.Debug("Exchange rate fetch failed, using 1:1 fallback",
			"currency", fromCurrency,
			"error", err,
		)
		return s.snapshot(amount, fromCurrency, decimal.NewFromInt(1), amount)
	}

	rate, ok := rates[fromCurrency]
	if !ok {
		slog.Debug("No exchange rate for currency, using 1:1 fallback",
			"currency", fromCurrency,
		)
		return s.snapshot(amount, fromCurrency, decimal.NewFromInt(1), amount)
	}

	return s.snapshot(amount, fromCurrency, rate, amount.Mul(rate).Round(2))
}

func (s *exchangeRateService) snapshot(amount decimal.Decimal, currency string, rate, converted decimal.Decimal) *entity.ConversionSnapshot {
	return &entity.ConversionSnapshot{
		OriginalAmount:   amount,
		OriginalCurrency: currency,
		USDAmount:        converted,
		ExchangeRate:     rate,
		LastUpdated:      time.Now().UTC(),
	}
}

// rates returns the inverted rate map, serving it from the short-lived
// cache when enabled and fresh.
func (s *exchangeRateService) rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	if s.cacheTTL > 0 {
		s.mu.Lock()
		if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
			rates := s.cached
			s.mu.Unlock()
			return rates, nil
		}
		s.mu.Unlock()
	}

	rates, err := s.fetchRates(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheTTL > 0 {
		s.mu.Lock()
		s.cached = rates
		s.cachedAt = time.Now()
		s.mu.Unlock()
	}
	return rates, nil
}

// fetchRates retrieves and inverts the provider's rate map. Entries with a
// non-positive provider rate are discarded, not defaulted to zero.
func (s *exchangeRateService) fetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rates request failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates response: %w", err)
	}

	var parsed ratesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse rates response: %w", err)
	}

	one := decimal.NewFromInt(1)
	rates := make(map[string]decimal.Decimal, len(parsed.Rates)+1)
	for currency, raw := range parsed.Rates {
		var providerRate float64
		if err := json.Unmarshal(raw, &providerRate); err != nil {
			continue
		}
		if providerRate <= 0 {
			continue
		}
		rates[currency] = one.Div(decimal.NewFromFloat(providerRate))
	}

	// The reporting currency always converts 1:1.
	rates[s.reportingCurrency] = one

	return rates, nil
}
