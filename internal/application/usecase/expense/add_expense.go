// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	CategoryID string
	Amount     decimal.Decimal
	Currency   string
	Date       string // calendar date, entity.DateLayout
	Receipt    string // optional data URI, stored uninterpreted
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	converter   adapter.CurrencyConverter
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	converter adapter.CurrencyConverter,
) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
		converter:   converter,
	}
}

// Execute performs the expense creation. The conversion snapshot is captured
// here, once; a conversion failure degrades to a 1:1 snapshot inside the
// converter and never fails the add. A persistence failure does fail the
// add, and no record is considered added.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if err := validateCalendarDate(input.Date); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidDate,
			fmt.Sprintf("date must be in %s format", entity.DateLayout),
			domainerror.ErrInvalidDate,
		)
	}

	exp := entity.NewExpense(input.CategoryID, input.Amount, input.Currency, input.Date, input.Receipt)
	exp.Conversion = uc.converter.Convert(ctx, input.Amount, input.Currency)

	if err := uc.expenseRepo.Add(ctx, exp); err != nil {
		slog.Error("Failed to persist expense", "expenseID", exp.ID, "error", err)
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodePersistenceFailed,
			"the expense may not have been saved",
			err,
		)
	}

	return &AddExpenseOutput{Expense: exp}, nil
}

func validateCalendarDate(date string) error {
	e := entity.Expense{Date: date}
	_, err := e.ParseDate()
	return err
}
