// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mohamedahmede/expense-tracker-lite/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Add persists a new expense. On error no record is considered added.
	Add(ctx context.Context, expense *entity.Expense) error

	// List retrieves all expenses sorted by calendar date descending;
	// expenses sharing a date keep creation order as the tiebreak.
	List(ctx context.Context) ([]*entity.Expense, error)

	// FindByID retrieves a single expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// Update replaces the stored expense with the same ID.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the collection.
	Delete(ctx context.Context, id uuid.UUID) error
}
