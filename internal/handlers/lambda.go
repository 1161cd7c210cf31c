package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"orders-api/internal/models"
	"orders-api/pkg/lambda"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// HandleCreate processes a create order request from the gateway
func (h *OrderHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var createReq models.CreateOrderRequest
	if err := json.Unmarshal(req.Body, &createReq); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid request body", err.Error()), nil
	}

	order, err := h.orderService.CreateOrder(ctx, &createReq)
	if err != nil {
		if isValidationError(err) {
			return errorResponse(http.StatusBadRequest, "Validation failed", err.Error()), nil
		}
		return errorResponse(http.StatusInternalServerError, "Internal server error", ""), nil
	}

	return jsonResponse(http.StatusOK, order)
}

// HandleGet processes a get order request from the gateway
func (h *OrderHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		return errorResponse(http.StatusBadRequest, "Invalid request", "Order ID is required"), nil
	}

	order, err := h.orderService.GetOrder(ctx, id)
	if err != nil {
		if isNotFoundError(err) {
			return errorResponse(http.StatusNotFound, "Order not found", err.Error()), nil
		}
		if isValidationError(err) {
			return errorResponse(http.StatusBadRequest, "Invalid request", err.Error()), nil
		}
		return errorResponse(http.StatusInternalServerError, "Internal server error", ""), nil
	}

	return jsonResponse(http.StatusOK, order)
}

// HandleDelete processes a delete order request from the gateway
func (h *OrderHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		return errorResponse(http.StatusBadRequest, "Invalid request", "Order ID is required"), nil
	}

	if err := h.orderService.DeleteOrder(ctx, id); err != nil {
		if isValidationError(err) {
			return errorResponse(http.StatusBadRequest, "Invalid request", err.Error()), nil
		}
		return errorResponse(http.StatusInternalServerError, "Internal server error", ""), nil
	}

	return &lambda.Response{StatusCode: http.StatusNoContent, Headers: jsonHeaders}, nil
}

// jsonResponse marshals a body into a generic JSON response
func jsonResponse(status int, body interface{}) (*lambda.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, "Internal server error", ""), nil
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    jsonHeaders,
		Body:       data,
	}, nil
}

// errorResponse builds an ErrorOutput response
func errorResponse(status int, message, details string) *lambda.Response {
	data, _ := json.Marshal(models.ErrorOutput{Error: message, Details: details})
	return &lambda.Response{
		StatusCode: status,
		Headers:    jsonHeaders,
		Body:       data,
	}
}
