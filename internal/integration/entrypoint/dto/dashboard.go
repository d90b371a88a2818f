package dto

// DashboardSummaryResponse represents the dashboard summary response
type DashboardSummaryResponse struct {
	Balance  string `json:"balance"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Period   string `json:"period"`
}
