package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/interfaces/http/response"
)

type OrderService interface {
	Create(ctx context.Context, customer entities.Identity, input *entities.CreateOrderInput) (*entities.Order, error)
	List(ctx context.Context, caller entities.Identity, rawStatus string) ([]*entities.Order, error)
	Get(ctx context.Context, caller entities.Identity, id uuid.UUID) (*entities.Order, error)
	Events(ctx context.Context, caller entities.Identity, id uuid.UUID) ([]*entities.OrderEvent, error)
	Cancel(ctx context.Context, customer entities.Identity, id uuid.UUID) (*entities.StatusChange, error)
	UpdateStatus(ctx context.Context, merchant entities.Identity, id uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.StatusChange, error)
	Stats(ctx context.Context, merchant entities.Identity) (*entities.OrderStats, error)
}

// OrderHandler serves customer and merchant order endpoints. Which orders
// are visible follows from the caller's identity alone.
type OrderHandler struct {
	orderUsecase OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase OrderService) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// Create books a service
// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var input entities.CreateOrderInput
	if !bindJSON(c, &input) {
		return
	}

	order, err := h.orderUsecase.Create(c.Request.Context(), identity, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

// List lists the caller's orders
// GET /api/orders?status=
// GET /api/merchant/orders?status=
func (h *OrderHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	items, err := h.orderUsecase.List(c.Request.Context(), identity, c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("orders", items))
}

// Get returns one of the caller's orders
// GET /api/orders/:id
// GET /api/merchant/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "order")
	if !ok {
		return
	}
	order, err := h.orderUsecase.Get(c.Request.Context(), identity, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// Events returns an order's status history
// GET /api/orders/:id/events
func (h *OrderHandler) Events(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "order")
	if !ok {
		return
	}
	events, err := h.orderUsecase.Events(c.Request.Context(), identity, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("events", events))
}

// Cancel cancels a pending order
// PUT /api/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "order")
	if !ok {
		return
	}
	change, err := h.orderUsecase.Cancel(c.Request.Context(), identity, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, statusChangeBody("Order cancelled successfully", change))
}

// UpdateStatus moves an order along its lifecycle
// PUT /api/merchant/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "order")
	if !ok {
		return
	}
	var input entities.UpdateOrderStatusInput
	if !bindJSON(c, &input) {
		return
	}

	change, err := h.orderUsecase.UpdateStatus(c.Request.Context(), identity, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, statusChangeBody("Order "+string(change.NewStatus), change))
}

// Stats summarizes the caller's orders
// GET /api/merchant/orders/stats
func (h *OrderHandler) Stats(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	stats, err := h.orderUsecase.Stats(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func statusChangeBody(message string, change *entities.StatusChange) gin.H {
	return gin.H{
		"message":         message,
		"order_id":        change.OrderID,
		"previous_status": change.PreviousStatus,
		"new_status":      change.NewStatus,
	}
}
