// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute removes the expense with the given id.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return domainerror.NewExpenseError(
			domainerror.ErrCodePersistenceFailed,
			"the expense may not have been deleted",
			err,
		)
	}
	return nil
}
