// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	expenseuc "github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/expense"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	Period expenseuc.Period
}

// GetSummaryOutput represents the balance/income/expenses header figures.
// Income is a fixed configured figure; balance is income minus the
// normalized expense total for the period.
type GetSummaryOutput struct {
	Balance  decimal.Decimal
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// GetSummaryUseCase computes the dashboard header totals.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
	income      decimal.Decimal
	now         func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(expenseRepo adapter.ExpenseRepository, income decimal.Decimal) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
		income:      income,
		now:         time.Now,
	}
}

// Execute performs the summary computation for the given period.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	all, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := expenseuc.FilterByPeriod(all, input.Period, uc.now())
	expenses := expenseuc.TotalNormalized(filtered)

	return &GetSummaryOutput{
		Balance:  uc.income.Sub(expenses),
		Income:   uc.income,
		Expenses: expenses,
	}, nil
}
