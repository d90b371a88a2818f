package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RatesAPI is a fake exchange rate provider. Rates are quoted the way the
// real provider quotes them: units of currency per one reporting unit.
type RatesAPI struct {
	mu     sync.Mutex
	rates  map[string]float64
	status int
	server *httptest.Server
}

// NewRatesAPI starts a rate provider that answers every request with the
// currently configured rate map.
func NewRatesAPI() *RatesAPI {
	api := &RatesAPI{
		rates:  map[string]float64{},
		status: http.StatusOK,
	}
	api.server = httptest.NewServer(http.HandlerFunc(api.handle))
	return api
}

func (a *RatesAPI) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status != http.StatusOK {
		w.WriteHeader(a.status)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"rates": a.rates})
}

// URL returns the provider endpoint.
func (a *RatesAPI) URL() string {
	return a.server.URL
}

// SetRate quotes currency at the given provider rate.
func (a *RatesAPI) SetRate(currency string, rate float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rates[currency] = rate
	a.status = http.StatusOK
}

// SetDown makes every request fail with a server error.
func (a *RatesAPI) SetDown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = http.StatusInternalServerError
}

// Close shuts the provider down.
func (a *RatesAPI) Close() {
	a.server.Close()
}
