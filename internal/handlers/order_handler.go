package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orders-api/internal/models"
	"orders-api/internal/services"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary Create a new order
// @Description Validate the request, assign an identifier and persist the order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorOutput
// @Failure 500 {object} models.ErrorOutput
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorOutput{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorOutput{
				Error:   "Validation failed",
				Details: err.Error(),
			})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorOutput{
			Error: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Get an order
// @Description Get a persisted order by ID
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorOutput
// @Failure 404 {object} models.ErrorOutput
// @Failure 500 {object} models.ErrorOutput
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorOutput{
			Error:   "Invalid request",
			Details: "Order ID is required",
		})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, models.ErrorOutput{
				Error:   "Order not found",
				Details: err.Error(),
			})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorOutput{
				Error:   "Invalid request",
				Details: err.Error(),
			})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorOutput{
			Error: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Delete an order
// @Description Delete a persisted order by ID
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} models.ErrorOutput
// @Failure 500 {object} models.ErrorOutput
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorOutput{
			Error:   "Invalid request",
			Details: "Order ID is required",
		})
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorOutput{
				Error:   "Invalid request",
				Details: err.Error(),
			})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorOutput{
			Error: "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
