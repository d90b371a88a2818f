package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/dashboard"
	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/expense"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{summaryUseCase: summaryUseCase}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	period, err := expense.ParsePeriod(ctx.Query("filter"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown filter value",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		Period: period,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardSummaryResponse{
		Balance:  output.Balance.StringFixed(2),
		Income:   output.Income.StringFixed(2),
		Expenses: output.Expenses.StringFixed(2),
		Period:   string(period),
	})
}
