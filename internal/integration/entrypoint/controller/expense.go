package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/expense"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase    *expense.AddExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addUseCase *expense.AddExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		addUseCase:    addUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	// Parse query parameters
	period, err := expense.ParsePeriod(ctx.Query("filter"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown filter value",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	input := expense.ListExpensesInput{Period: period}
	if page := ctx.Query("page"); page != "" {
		input.Page, _ = strconv.Atoi(page)
	}
	if limit := ctx.Query("limit"); limit != "" {
		input.Limit, _ = strconv.Atoi(limit)
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	// Execute use case
	output, err := c.addUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		CategoryID: req.CategoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Currency:   req.Currency,
		Date:       req.Date,
		Receipt:    req.Receipt,
	})
	if err != nil {
		c.writeExpenseError(ctx, err, "Failed to create expense")
		return
	}

	// The write path echoes the category id only; descriptors and relative
	// labels are resolved on the list path.
	exp := output.Expense
	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(exp, &entity.Category{ID: exp.CategoryID}, ""))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	// Parse request body
	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ID:         id,
		CategoryID: req.CategoryID,
		Currency:   req.Currency,
		Date:       req.Date,
		Receipt:    req.Receipt,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.writeExpenseError(ctx, err, "Failed to update expense")
		return
	}

	exp := output.Expense
	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(exp, &entity.Category{ID: exp.CategoryID}, ""))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.writeExpenseError(ctx, err, "Failed to delete expense")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// writeExpenseError maps use case errors to HTTP responses.
func (c *ExpenseController) writeExpenseError(ctx *gin.Context, err error, fallback string) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domainerror.ErrExpenseNotFound):
			status = http.StatusNotFound
		case expErr.Code == domainerror.ErrCodePersistenceFailed:
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: fallback,
	})
}
