package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/persistence/blobstore"
)

// failingStore returns a fixed error from every operation.
type failingStore struct {
	err error
}

func (s failingStore) Save(ctx context.Context, key string, value []byte) error {
	return s.err
}

func (s failingStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, s.err
}

func (s failingStore) Ping(ctx context.Context) error { return s.err }

func newExpense(date string, amount float64) *entity.Expense {
	return &entity.Expense{
		ID:         uuid.New(),
		CategoryID: "groceries",
		Amount:     decimal.NewFromFloat(amount),
		Currency:   "USD",
		Date:       date,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestExpenseRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("added expenses round-trip", func(t *testing.T) {
		repo := NewExpenseRepository(blobstore.NewMemoryStore())

		exp := newExpense("2024-01-15", 42.50)
		exp.Receipt = "data:image/png;base64,abc"
		exp.Conversion = &entity.ConversionSnapshot{
			OriginalAmount:   exp.Amount,
			OriginalCurrency: "USD",
			USDAmount:        exp.Amount,
			ExchangeRate:     decimal.NewFromInt(1),
			LastUpdated:      time.Now().UTC(),
		}
		if err := repo.Add(ctx, exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := repo.FindByID(ctx, exp.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != exp.ID || got.Date != exp.Date || got.Receipt != exp.Receipt {
			t.Errorf("round-trip mismatch: %+v", got)
		}
		if !got.Amount.Equal(exp.Amount) {
			t.Errorf("expected amount %s, got %s", exp.Amount, got.Amount)
		}
		if got.Conversion == nil || !got.Conversion.USDAmount.Equal(exp.Amount) {
			t.Errorf("expected the conversion snapshot to survive, got %+v", got.Conversion)
		}
	})

	t.Run("list sorts by date descending with insertion order as tiebreak", func(t *testing.T) {
		repo := NewExpenseRepository(blobstore.NewMemoryStore())

		older := newExpense("2024-01-10", 1)
		first := newExpense("2024-01-15", 2)
		second := newExpense("2024-01-15", 3)
		for _, exp := range []*entity.Expense{older, first, second} {
			if err := repo.Add(ctx, exp); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(got))
		}
		// Later adds are prepended, so the second 01-15 entry leads.
		wantIDs := []uuid.UUID{second.ID, first.ID, older.ID}
		for i, exp := range got {
			if exp.ID != wantIDs[i] {
				t.Errorf("position %d: unexpected expense %s (date %s)", i, exp.ID, exp.Date)
			}
		}
	})

	t.Run("update replaces in place", func(t *testing.T) {
		repo := NewExpenseRepository(blobstore.NewMemoryStore())
		exp := newExpense("2024-01-15", 10)
		if err := repo.Add(ctx, exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exp.Amount = decimal.NewFromInt(99)
		if err := repo.Update(ctx, exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := repo.FindByID(ctx, exp.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Amount.Equal(decimal.NewFromInt(99)) {
			t.Errorf("expected updated amount, got %s", got.Amount)
		}
	})

	t.Run("delete removes the record", func(t *testing.T) {
		repo := NewExpenseRepository(blobstore.NewMemoryStore())
		exp := newExpense("2024-01-15", 10)
		if err := repo.Add(ctx, exp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, exp.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, exp.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("missing ids report not found", func(t *testing.T) {
		repo := NewExpenseRepository(blobstore.NewMemoryStore())

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("FindByID: expected ErrExpenseNotFound, got %v", err)
		}
		if err := repo.Update(ctx, newExpense("2024-01-15", 10)); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("Update: expected ErrExpenseNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("Delete: expected ErrExpenseNotFound, got %v", err)
		}
	})

	t.Run("a corrupt blob reads as empty", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		if err := store.Save(ctx, "expense-tracker:expenses", []byte("{{{not json")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo := NewExpenseRepository(store)

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected an empty list, got %d expenses", len(got))
		}

		// A subsequent add replaces the corrupt blob.
		if err := repo.Add(ctx, newExpense("2024-01-15", 10)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err = repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 expense after re-adding, got %d", len(got))
		}
	})

	t.Run("records with invalid ids are skipped on read", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		blob := []byte(`[{"id":"not-a-uuid","category":"x","amount":"1","currency":"USD","date":"2024-01-15"}]`)
		if err := store.Save(ctx, "expense-tracker:expenses", blob); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo := NewExpenseRepository(store)

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected the bad record to be skipped, got %d expenses", len(got))
		}
	})

	t.Run("concurrent adds all survive the read-modify-write", func(t *testing.T) {
		repo := NewExpenseRepository(blobstore.NewMemoryStore())

		const n = 50
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- repo.Add(ctx, newExpense("2024-01-15", float64(i)))
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != n {
			t.Errorf("expected %d expenses, got %d (lost update)", n, len(got))
		}
	})

	t.Run("a failing store surfaces the error", func(t *testing.T) {
		repo := NewExpenseRepository(failingStore{err: errors.New("store down")})

		if err := repo.Add(ctx, newExpense("2024-01-15", 10)); !errors.Is(err, domainerror.ErrPersistenceFailed) {
			t.Errorf("Add: expected ErrPersistenceFailed, got %v", err)
		}
		if _, err := repo.List(ctx); err == nil {
			t.Error("List: expected an error")
		}
	})
}
