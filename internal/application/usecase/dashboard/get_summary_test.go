package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/usecase/expense"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
)

type fakeExpenseRepo struct {
	expenses []*entity.Expense
	listErr  error
}

func (r *fakeExpenseRepo) Add(ctx context.Context, e *entity.Expense) error { return nil }

func (r *fakeExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	return r.expenses, r.listErr
}

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	return domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return domainerror.ErrExpenseNotFound
}

func usdExpense(date string, usd float64) *entity.Expense {
	amount := decimal.NewFromFloat(usd)
	return &entity.Expense{
		ID:       uuid.New(),
		Amount:   amount,
		Currency: "USD",
		Date:     date,
		Conversion: &entity.ConversionSnapshot{
			OriginalAmount:   amount,
			OriginalCurrency: "USD",
			USDAmount:        amount,
			ExchangeRate:     decimal.NewFromInt(1),
			LastUpdated:      time.Now().UTC(),
		},
	}
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	now := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)
	income := decimal.NewFromFloat(10840)

	newUseCase := func(repo *fakeExpenseRepo) *GetSummaryUseCase {
		uc := NewGetSummaryUseCase(repo, income)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("balance is income minus the period total", func(t *testing.T) {
		repo := &fakeExpenseRepo{expenses: []*entity.Expense{
			usdExpense("2024-01-20", 100),
			usdExpense("2024-01-19", 40),
		}}
		uc := newUseCase(repo)

		output, err := uc.Execute(context.Background(), GetSummaryInput{Period: expense.PeriodAll})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromFloat(140); !output.Expenses.Equal(want) {
			t.Errorf("expected expenses %s, got %s", want, output.Expenses)
		}
		if !output.Income.Equal(income) {
			t.Errorf("expected income %s, got %s", income, output.Income)
		}
		if want := decimal.NewFromFloat(10700); !output.Balance.Equal(want) {
			t.Errorf("expected balance %s, got %s", want, output.Balance)
		}
	})

	t.Run("period filter narrows the total", func(t *testing.T) {
		repo := &fakeExpenseRepo{expenses: []*entity.Expense{
			usdExpense("2024-01-20", 100),
			usdExpense("2023-06-01", 500),
		}}
		uc := newUseCase(repo)

		output, err := uc.Execute(context.Background(), GetSummaryInput{Period: expense.PeriodToday})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.NewFromFloat(100); !output.Expenses.Equal(want) {
			t.Errorf("expected expenses %s, got %s", want, output.Expenses)
		}
	})

	t.Run("empty store leaves the full income as balance", func(t *testing.T) {
		uc := newUseCase(&fakeExpenseRepo{})

		output, err := uc.Execute(context.Background(), GetSummaryInput{Period: expense.PeriodAll})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Balance.Equal(income) {
			t.Errorf("expected balance %s, got %s", income, output.Balance)
		}
		if !output.Expenses.IsZero() {
			t.Errorf("expected zero expenses, got %s", output.Expenses)
		}
	})

	t.Run("surfaces a repository failure", func(t *testing.T) {
		uc := newUseCase(&fakeExpenseRepo{listErr: errors.New("store unavailable")})

		if _, err := uc.Execute(context.Background(), GetSummaryInput{Period: expense.PeriodAll}); err == nil {
			t.Error("expected an error")
		}
	})
}
