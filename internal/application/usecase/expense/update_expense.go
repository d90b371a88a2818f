// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. Nil pointer
// fields are left unchanged (partial replace).
type UpdateExpenseInput struct {
	ID         uuid.UUID
	CategoryID *string
	Amount     *decimal.Decimal
	Currency   *string
	Date       *string
	Receipt    *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	converter   adapter.CurrencyConverter
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	converter adapter.CurrencyConverter,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		converter:   converter,
	}
}

// Execute performs a full or partial field replace on an existing expense.
// ID and CreatedAt are immutable. When the amount or currency changes, the
// conversion snapshot is re-captured so that it keeps describing the stored
// amount.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	exp, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, err
	}

	reconvert := false
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		exp.Amount = *input.Amount
		reconvert = true
	}
	if input.Currency != nil {
		exp.Currency = *input.Currency
		reconvert = true
	}
	if input.CategoryID != nil {
		exp.CategoryID = *input.CategoryID
	}
	if input.Date != nil {
		if err := validateCalendarDate(*input.Date); err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidDate,
				"invalid date",
				domainerror.ErrInvalidDate,
			)
		}
		exp.Date = *input.Date
	}
	if input.Receipt != nil {
		exp.Receipt = *input.Receipt
	}

	if reconvert {
		exp.Conversion = uc.converter.Convert(ctx, exp.Amount, exp.Currency)
	}

	if err := uc.expenseRepo.Update(ctx, exp); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodePersistenceFailed,
			"the expense may not have been updated",
			err,
		)
	}

	return &UpdateExpenseOutput{Expense: exp}, nil
}
