package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"orders-api/internal/models"
	"orders-api/internal/repositories"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// OrderRepository persists orders to a local SQLite table. It is used in
// server mode where no managed key-value store is available.
type OrderRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewOrderRepository creates a new SQLite-backed order repository
func NewOrderRepository(db *sql.DB, logger *logrus.Logger) *OrderRepository {
	if logger == nil {
		logger = logrus.New()
	}

	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

// Save writes an order, overwriting any existing record with the same ID
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	query := `
		INSERT OR REPLACE INTO orders (id, name, count, status)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, order.ID, order.Name, order.Count, order.Status)
	if err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.ID, err)
	}

	r.logger.WithField("order_id", order.ID).Debug("Order saved")
	return nil
}

// GetByID retrieves an order by its ID
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if id == "" {
		return nil, repositories.ErrInvalidID
	}

	query := `SELECT id, name, count, status FROM orders WHERE id = ?`

	var order models.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(&order.ID, &order.Name, &order.Count, &order.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}

	return &order, nil
}

// Delete removes an order by its ID
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return repositories.ErrInvalidID
	}

	_, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}

	r.logger.WithField("order_id", id).Debug("Order deleted")
	return nil
}
