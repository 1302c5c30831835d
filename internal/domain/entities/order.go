package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus of an order. Payments are not processed, so orders stay pending.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
)

// Order is a customer's booking of one service
type Order struct {
	ID              uuid.UUID       `json:"order_id"`
	CustomerID      uuid.UUID       `json:"user_id"`
	MerchantID      uuid.UUID       `json:"merchant_id"`
	ServiceID       uuid.UUID       `json:"service_id"`
	ServiceTitle    string          `json:"service_title"`
	ServiceDuration null.Int        `json:"duration"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	Status          OrderStatus     `json:"order_status"`
	Notes           null.String     `json:"notes"`
	ScheduledDate   null.Time       `json:"scheduled_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Joined for display.
	BusinessName  string `json:"business_name,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

// OrderScope restricts order access to the rows one principal owns.
type OrderScope struct {
	Role    Role
	OwnerID uuid.UUID
}

// ScopeFor returns the order scope of a resolved identity.
func ScopeFor(id Identity) OrderScope {
	return OrderScope{Role: id.Role, OwnerID: id.SubjectID}
}

// OrderFilter narrows an order listing. An empty Status lists all.
type OrderFilter struct {
	Status OrderStatus
}

// OrderEvent is one immutable entry of an order's status history.
type OrderEvent struct {
	ID         uuid.UUID     `json:"event_id"`
	OrderID    uuid.UUID     `json:"order_id"`
	FromStatus null.String   `json:"from_status"`
	ToStatus   OrderStatus   `json:"to_status"`
	ActorRole  Role          `json:"actor_role"`
	ActorID    uuid.NullUUID `json:"actor_id"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewOrderEvent builds the history entry for a committed status change.
// from is empty for the creation event.
func NewOrderEvent(id, orderID uuid.UUID, from, to OrderStatus, actor Identity, at time.Time) *OrderEvent {
	event := &OrderEvent{
		ID:        id,
		OrderID:   orderID,
		ToStatus:  to,
		ActorRole: actor.Role,
		CreatedAt: at,
	}
	if from != "" {
		event.FromStatus = null.StringFrom(string(from))
	}
	if actor.SubjectID != uuid.Nil {
		event.ActorID = uuid.NullUUID{UUID: actor.SubjectID, Valid: true}
	}
	return event
}

// StatusChange is the result of a committed transition
type StatusChange struct {
	OrderID        uuid.UUID   `json:"order_id"`
	PreviousStatus OrderStatus `json:"previous_status"`
	NewStatus      OrderStatus `json:"new_status"`
}

// CreateOrderInput represents a customer booking request
type CreateOrderInput struct {
	ServiceID     string     `json:"service_id"`
	Notes         *string    `json:"notes"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

// UpdateOrderStatusInput represents a merchant status change request
type UpdateOrderStatusInput struct {
	Status string `json:"status"`
}

// StatusAggregate is one row of a per-status order aggregation.
type StatusAggregate struct {
	Status OrderStatus
	Count  int64
	Amount decimal.Decimal
}

// OrderStats summarizes a merchant's orders
type OrderStats struct {
	TotalOrders      int64           `json:"total_orders"`
	PendingOrders    int64           `json:"pending_orders"`
	ConfirmedOrders  int64           `json:"confirmed_orders"`
	InProgressOrders int64           `json:"in_progress_orders"`
	CompletedOrders  int64           `json:"completed_orders"`
	CancelledOrders  int64           `json:"cancelled_orders"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
}

// ComputeOrderStats folds per-status aggregates into stats. Only completed
// orders count toward earnings.
func ComputeOrderStats(rows []StatusAggregate) OrderStats {
	stats := OrderStats{TotalEarnings: decimal.Zero}
	for _, row := range rows {
		stats.TotalOrders += row.Count
		switch row.Status {
		case OrderStatusPending:
			stats.PendingOrders += row.Count
		case OrderStatusConfirmed:
			stats.ConfirmedOrders += row.Count
		case OrderStatusInProgress:
			stats.InProgressOrders += row.Count
		case OrderStatusCompleted:
			stats.CompletedOrders += row.Count
			stats.TotalEarnings = stats.TotalEarnings.Add(row.Amount)
		case OrderStatusCancelled:
			stats.CancelledOrders += row.Count
		}
	}
	return stats
}
