package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// OrderStatusCreated is the status assigned to every newly processed order.
const OrderStatusCreated = "created"

// MaxOrderNameLength is the maximum allowed length of an order name.
const MaxOrderNameLength = 100

// CreateOrderRequest represents the create order request body
type CreateOrderRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Count int    `json:"count" validate:"required,gt=0"`
}

// Validate validates the create order request data
func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}

	// Length limits count characters, not bytes, matching the validator tags
	if utf8.RuneCountInString(r.Name) > MaxOrderNameLength {
		return fmt.Errorf("name must be at most %d characters", MaxOrderNameLength)
	}

	if r.Count <= 0 {
		return fmt.Errorf("count must be larger than 0")
	}

	return nil
}

// Order represents a processed order in the system.
// The same shape is persisted to the key-value table and returned
// to the caller as the response body.
type Order struct {
	ID     string `json:"id" db:"id" dynamodbav:"id" validate:"required,uuid4"`
	Name   string `json:"name" db:"name" dynamodbav:"name" validate:"required,min=1,max=100"`
	Count  int    `json:"count" db:"count" dynamodbav:"count" validate:"required,gt=0"`
	Status string `json:"status" db:"status" dynamodbav:"status" validate:"required"`
}

// NewOrder creates a new order with a generated ID and "created" status
func NewOrder(name string, count int) *Order {
	return &Order{
		ID:     uuid.New().String(),
		Name:   name,
		Count:  count,
		Status: OrderStatusCreated,
	}
}

// Validate validates the order data
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("order ID is required")
	}

	if _, err := uuid.Parse(o.ID); err != nil {
		return fmt.Errorf("invalid order ID format: %w", err)
	}

	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("order name is required")
	}

	if utf8.RuneCountInString(o.Name) > MaxOrderNameLength {
		return fmt.Errorf("order name must be at most %d characters", MaxOrderNameLength)
	}

	if o.Count <= 0 {
		return fmt.Errorf("order count must be larger than 0")
	}

	if o.Status == "" {
		return fmt.Errorf("order status is required")
	}

	return nil
}

// ErrorOutput represents the error response body returned on failure
type ErrorOutput struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
