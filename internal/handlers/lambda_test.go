package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"orders-api/internal/models"
	"orders-api/internal/repositories/memory"
	"orders-api/internal/services"
	"orders-api/pkg/lambda"
)

func newLambdaHandler(repo *memory.OrderRepository) *OrderHandler {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return NewOrderHandler(services.NewOrderService(repo, logger))
}

func TestHandleCreate(t *testing.T) {
	repo := memory.NewOrderRepository()
	handler := newLambdaHandler(repo)

	resp, err := handler.HandleCreate(context.Background(), &lambda.Request{
		Method: http.MethodPost,
		Path:   "/api/orders",
		Body:   []byte(`{"name": "example", "count": 5}`),
	})
	if err != nil {
		t.Fatalf("HandleCreate() failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("HandleCreate() status = %d, want 200, body: %s", resp.StatusCode, resp.Body)
	}

	var order models.Order
	if err := json.Unmarshal(resp.Body, &order); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if _, err := uuid.Parse(order.ID); err != nil {
		t.Errorf("Response ID is not a valid UUID: %v", err)
	}

	if order.Status != models.OrderStatusCreated {
		t.Errorf("Response status = %s, want %s", order.Status, models.OrderStatusCreated)
	}

	if repo.SaveCalls != 1 {
		t.Errorf("SaveCalls = %d, want 1", repo.SaveCalls)
	}
}

func TestHandleCreate_InvalidBody(t *testing.T) {
	handler := newLambdaHandler(memory.NewOrderRepository())

	resp, err := handler.HandleCreate(context.Background(), &lambda.Request{
		Method: http.MethodPost,
		Path:   "/api/orders",
		Body:   []byte(`{"name": "example", "count": -1}`),
	})
	if err != nil {
		t.Fatalf("HandleCreate() failed: %v", err)
	}

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("HandleCreate() status = %d, want 400", resp.StatusCode)
	}

	var errOut models.ErrorOutput
	if err := json.Unmarshal(resp.Body, &errOut); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if errOut.Error == "" {
		t.Error("Error response should carry an error message")
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	handler := newLambdaHandler(memory.NewOrderRepository())

	resp, err := handler.HandleGet(context.Background(), &lambda.Request{
		Method:     http.MethodGet,
		Path:       "/api/orders/123e4567-e89b-12d3-a456-426614174000",
		PathParams: map[string]string{"id": "123e4567-e89b-12d3-a456-426614174000"},
	})
	if err != nil {
		t.Fatalf("HandleGet() failed: %v", err)
	}

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("HandleGet() status = %d, want 404", resp.StatusCode)
	}
}

func TestHandleDelete(t *testing.T) {
	repo := memory.NewOrderRepository()
	handler := newLambdaHandler(repo)
	ctx := context.Background()

	createResp, err := handler.HandleCreate(ctx, &lambda.Request{
		Method: http.MethodPost,
		Path:   "/api/orders",
		Body:   []byte(`{"name": "example", "count": 5}`),
	})
	if err != nil {
		t.Fatalf("HandleCreate() failed: %v", err)
	}

	var created models.Order
	if err := json.Unmarshal(createResp.Body, &created); err != nil {
		t.Fatalf("Failed to decode create response: %v", err)
	}

	resp, err := handler.HandleDelete(ctx, &lambda.Request{
		Method:     http.MethodDelete,
		Path:       "/api/orders/" + created.ID,
		PathParams: map[string]string{"id": created.ID},
	})
	if err != nil {
		t.Fatalf("HandleDelete() failed: %v", err)
	}

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("HandleDelete() status = %d, want 204", resp.StatusCode)
	}

	if repo.DeleteCalls != 1 {
		t.Errorf("DeleteCalls = %d, want 1", repo.DeleteCalls)
	}
}
