package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
)

// OrderRepository defines order data operations. Every read and write is
// restricted by an OrderScope; rows outside it behave as missing.
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID, scope entities.OrderScope) (*entities.Order, error)
	List(ctx context.Context, scope entities.OrderScope, filter entities.OrderFilter) ([]*entities.Order, error)

	// CompareAndSwapStatus moves the order to next only if it is still in
	// expected. It returns ErrConflict when no row matched.
	CompareAndSwapStatus(ctx context.Context, id uuid.UUID, scope entities.OrderScope, expected, next entities.OrderStatus) error

	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Order, error)
	AggregateByStatus(ctx context.Context, merchantID uuid.UUID) ([]entities.StatusAggregate, error)
}

// OrderEventRepository stores order status history
type OrderEventRepository interface {
	Create(ctx context.Context, event *entities.OrderEvent) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderEvent, error)
}
