// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

const (
	// DefaultPageSize matches the dashboard's list page size.
	DefaultPageSize = 10
	// MaxPageSize caps the per-page limit.
	MaxPageSize = 100
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Period Period
	Page   int
	Limit  int
}

// ExpenseOutput represents a single expense in the output, enriched with
// the category descriptor and a relative date label for display.
type ExpenseOutput struct {
	ID         uuid.UUID
	Category   *entity.Category
	Amount     decimal.Decimal
	Currency   string
	Date       string
	DateLabel  string
	Receipt    string
	CreatedAt  time.Time
	Conversion *entity.ConversionSnapshot
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasMore    bool
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
	// Total is the normalized total of the whole filtered set, not just the
	// returned page.
	Total      decimal.Decimal
	Pagination PaginationOutput
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	now          func() time.Time
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// Execute lists expenses filtered by period, newest transaction date first,
// paginated. The period window is anchored at the current time on every
// call, so crossing midnight moves records out of "today" on the next call.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	all, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	filtered := FilterByPeriod(all, input.Period, now)
	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageItems := filtered[start:end]

	outputs := make([]*ExpenseOutput, len(pageItems))
	for i, exp := range pageItems {
		outputs[i] = &ExpenseOutput{
			ID:         exp.ID,
			Category:   uc.resolveCategory(ctx, exp.CategoryID),
			Amount:     exp.Amount,
			Currency:   exp.Currency,
			Date:       exp.Date,
			DateLabel:  uc.dateLabel(exp, now),
			Receipt:    exp.Receipt,
			CreatedAt:  exp.CreatedAt,
			Conversion: exp.Conversion,
		}
	}

	return &ListExpensesOutput{
		Expenses: outputs,
		Total:    TotalNormalized(filtered),
		Pagination: PaginationOutput{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasMore:    end < total,
		},
	}, nil
}

// resolveCategory looks up the expense's category, substituting the generic
// "Unknown" descriptor when the id no longer resolves. A missing category
// must never fail the listing.
func (uc *ListExpensesUseCase) resolveCategory(ctx context.Context, id string) *entity.Category {
	cat, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		// Not-found and registry read failures degrade the same way.
		return entity.UnknownCategory(id)
	}
	return cat
}

// dateLabel renders the relative label from the transaction date, carrying
// the creation time-of-day so same-day entries show when they were logged.
func (uc *ListExpensesUseCase) dateLabel(exp *entity.Expense, now time.Time) string {
	date, err := exp.ParseDate()
	if err != nil {
		return exp.Date
	}
	ts := time.Date(date.Year(), date.Month(), date.Day(),
		exp.CreatedAt.Hour(), exp.CreatedAt.Minute(), exp.CreatedAt.Second(), 0, now.Location())
	return FormatRelativeDate(ts, now)
}
