package dto

// CreateExpenseRequest represents the create expense request payload
type CreateExpenseRequest struct {
	CategoryID string  `json:"category" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Currency   string  `json:"currency" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Receipt    string  `json:"receipt"`
}

// UpdateExpenseRequest represents the partial update request payload.
// Only the fields present in the payload are applied.
type UpdateExpenseRequest struct {
	CategoryID *string  `json:"category"`
	Amount     *float64 `json:"amount"`
	Currency   *string  `json:"currency"`
	Date       *string  `json:"date"`
	Receipt    *string  `json:"receipt"`
}

// ConversionResponse represents a currency conversion snapshot in API responses
type ConversionResponse struct {
	OriginalAmount   string `json:"originalAmount"`
	OriginalCurrency string `json:"originalCurrency"`
	USDAmount        string `json:"usdAmount"`
	ExchangeRate     string `json:"exchangeRate"`
	LastUpdated      string `json:"lastUpdated"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID         string              `json:"id"`
	Category   CategoryResponse    `json:"category"`
	Amount     string              `json:"amount"`
	Currency   string              `json:"currency"`
	Date       string              `json:"date"`
	DateLabel  string              `json:"dateLabel"`
	Receipt    string              `json:"receipt,omitempty"`
	CreatedAt  string              `json:"createdAt"`
	Conversion *ConversionResponse `json:"currencyConversion,omitempty"`
}

// PaginationResponse represents paging metadata in list responses
type PaginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// ExpenseListResponse represents the list expenses response
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
	TotalUSD   string             `json:"totalUsd"`
}
