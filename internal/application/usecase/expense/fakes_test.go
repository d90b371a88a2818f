package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

// fakeExpenseRepo is an in-memory ExpenseRepository for use case tests.
// It keeps expenses newest-insert-first like the real repository.
type fakeExpenseRepo struct {
	expenses []*entity.Expense
	addErr   error
	listErr  error
	saveErr  error
}

func (r *fakeExpenseRepo) Add(ctx context.Context, expense *entity.Expense) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.expenses = append([]*entity.Expense{expense}, r.expenses...)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Expense, len(r.expenses))
	copy(out, r.expenses)
	sortByDateDesc(out)
	return out, nil
}

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, exp := range r.expenses {
		if exp.ID == id {
			cp := *exp
			return &cp, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, exp := range r.expenses {
		if exp.ID == expense.ID {
			r.expenses[i] = expense
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, exp := range r.expenses {
		if exp.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}

func sortByDateDesc(expenses []*entity.Expense) {
	// Insertion sort keeps the test dependency surface small and is stable.
	for i := 1; i < len(expenses); i++ {
		for j := i; j > 0 && expenses[j-1].Date < expenses[j].Date; j-- {
			expenses[j-1], expenses[j] = expenses[j], expenses[j-1]
		}
	}
}

// fakeCategoryRepo resolves a fixed set of categories by id.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	findErr    error
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, cat := range r.categories {
		out = append(out, cat)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if cat, ok := r.categories[id]; ok {
		return cat, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Upsert(ctx context.Context, category *entity.Category) error {
	if r.categories == nil {
		r.categories = make(map[string]*entity.Category)
	}
	r.categories[category.ID] = category
	return nil
}

// fakeConverter multiplies by a fixed rate, mirroring the snapshot shape the
// real converter produces.
type fakeConverter struct {
	rate  decimal.Decimal
	calls int
}

func (c *fakeConverter) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency string) *entity.ConversionSnapshot {
	c.calls++
	return &entity.ConversionSnapshot{
		OriginalAmount:   amount,
		OriginalCurrency: fromCurrency,
		USDAmount:        amount.Mul(c.rate).Round(2),
		ExchangeRate:     c.rate,
		LastUpdated:      time.Now().UTC(),
	}
}

// testExpense builds an expense with the given date and USD amount.
func testExpense(date string, usd float64) *entity.Expense {
	amount := decimal.NewFromFloat(usd)
	return &entity.Expense{
		ID:         uuid.New(),
		CategoryID: "groceries",
		Amount:     amount,
		Currency:   "USD",
		Date:       date,
		CreatedAt:  time.Now().UTC(),
		Conversion: &entity.ConversionSnapshot{
			OriginalAmount:   amount,
			OriginalCurrency: "USD",
			USDAmount:        amount,
			ExchangeRate:     decimal.NewFromInt(1),
			LastUpdated:      time.Now().UTC(),
		},
	}
}
