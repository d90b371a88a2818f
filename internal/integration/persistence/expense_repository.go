// Package persistence implements the application repositories on top of
// a blob store, mirroring the single-document storage model the app uses.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
	domainerror "github.com/mohamedahmede/expense-tracker-lite/internal/domain/error"
	"github.com/mohamedahmede/expense-tracker-lite/internal/integration/persistence/model"
)

const expensesKey = "expense-tracker:expenses"

// ExpenseRepository stores all expenses as a single JSON array blob.
// Mutations do a serialized read-modify-write so concurrent writers
// cannot lose each other's updates.
type ExpenseRepository struct {
	store adapter.BlobStore
	mu    sync.Mutex
}

// NewExpenseRepository creates an expense repository backed by the given store.
func NewExpenseRepository(store adapter.BlobStore) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

// Add prepends the expense so the stored array stays newest-first.
func (r *ExpenseRepository) Add(ctx context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	records = append([]model.ExpenseModel{model.FromExpenseEntity(expense)}, records...)
	return r.save(ctx, records)
}

// List returns all expenses sorted by date descending. The sort is stable,
// so expenses sharing a date keep their newest-first insertion order.
func (r *ExpenseRepository) List(ctx context.Context) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, 0, len(records))
	for _, record := range records {
		expense, ok := record.ToExpenseEntity()
		if !ok {
			slog.Warn("skipping stored expense with invalid id", "id", record.ID)
			continue
		}
		expenses = append(expenses, expense)
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})
	return expenses, nil
}

// FindByID returns the expense with the given id.
func (r *ExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id.String() {
			if expense, ok := record.ToExpenseEntity(); ok {
				return expense, nil
			}
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

// Update replaces the stored expense with the same id in place.
func (r *ExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, record := range records {
		if record.ID == expense.ID.String() {
			records[i] = model.FromExpenseEntity(expense)
			return r.save(ctx, records)
		}
	}
	return domainerror.ErrExpenseNotFound
}

// Delete removes the expense with the given id.
func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, record := range records {
		if record.ID == id.String() {
			records = append(records[:i], records[i+1:]...)
			return r.save(ctx, records)
		}
	}
	return domainerror.ErrExpenseNotFound
}

// load reads and decodes the expense blob. A corrupt blob is treated as
// empty so a single bad write cannot brick the whole store.
func (r *ExpenseRepository) load(ctx context.Context) ([]model.ExpenseModel, error) {
	raw, found, err := r.store.Load(ctx, expensesKey)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	if !found {
		return nil, nil
	}

	var records []model.ExpenseModel
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("stored expense blob is corrupt, starting from empty", "error", err)
		return nil, nil
	}
	return records, nil
}

func (r *ExpenseRepository) save(ctx context.Context, records []model.ExpenseModel) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}
	if err := r.store.Save(ctx, expensesKey, raw); err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrPersistenceFailed, err)
	}
	return nil
}
