package services

import (
	"context"

	"orders-api/internal/models"
)

// OrderService defines the interface for order business logic operations
type OrderService interface {
	// CreateOrder validates the request, assigns an identifier and persists
	// the resulting order when persistence is configured
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)

	// GetOrder retrieves a previously persisted order by ID
	GetOrder(ctx context.Context, id string) (*models.Order, error)

	// DeleteOrder removes a persisted order by ID
	DeleteOrder(ctx context.Context, id string) error
}
