package memory

import (
	"context"
	"sync"

	"orders-api/internal/models"
	"orders-api/internal/repositories"
)

// OrderRepository is an in-memory implementation of the order repository
// for testing. It records how many times each operation was invoked so
// tests can assert on persistence behavior.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order

	// Call counters
	SaveCalls   int
	GetCalls    int
	DeleteCalls int

	// SaveErr, when set, is returned by Save to simulate store failures
	SaveErr error
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Save stores a copy of the order keyed by its ID
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.orders[order.ID] = *order
	return nil
}

// GetByID retrieves an order by its ID
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.GetCalls++
	order, ok := r.orders[id]
	if !ok {
		return nil, repositories.ErrOrderNotFound
	}

	return &order, nil
}

// Delete removes an order by its ID
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.DeleteCalls++
	delete(r.orders, id)
	return nil
}

// Len returns the number of stored orders
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
