package repositories

import (
	"context"

	"orders-api/internal/models"
)

// OrderRepository defines the key-value persistence operations for orders.
// Implementations are thin pass-throughs to the underlying store: no
// transactions, no conflict detection, no retries. Store failures
// propagate to the caller.
type OrderRepository interface {
	// Save writes an order by its ID, overwriting any existing record
	Save(ctx context.Context, order *models.Order) error

	// GetByID retrieves an order by its ID, returning ErrOrderNotFound
	// when no record exists for the key
	GetByID(ctx context.Context, id string) (*models.Order, error)

	// Delete removes an order by its ID
	Delete(ctx context.Context, id string) error
}
