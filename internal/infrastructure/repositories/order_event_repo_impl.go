package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/infrastructure/models"
)

// OrderEventRepository implements order history operations
type OrderEventRepository struct {
	db *gorm.DB
}

// NewOrderEventRepository creates a new order event repository
func NewOrderEventRepository(db *gorm.DB) *OrderEventRepository {
	return &OrderEventRepository{db: db}
}

// Create appends an event
func (r *OrderEventRepository) Create(ctx context.Context, event *entities.OrderEvent) error {
	m := &models.OrderEvent{
		ID:         event.ID,
		OrderID:    event.OrderID,
		FromStatus: event.FromStatus.Ptr(),
		ToStatus:   string(event.ToStatus),
		ActorRole:  string(event.ActorRole),
		CreatedAt:  event.CreatedAt,
	}
	if event.ActorID.Valid {
		id := event.ActorID.UUID
		m.ActorID = &id
	}
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

// ListByOrder returns an order's events oldest first
func (r *OrderEventRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderEvent, error) {
	var ms []models.OrderEvent
	if err := GetDB(ctx, r.db).Where("order_id = ?", orderID).Order("created_at ASC").Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.OrderEvent, len(ms))
	for i, m := range ms {
		e := &entities.OrderEvent{
			ID:         m.ID,
			OrderID:    m.OrderID,
			FromStatus: null.StringFromPtr(m.FromStatus),
			ToStatus:   entities.OrderStatus(m.ToStatus),
			ActorRole:  entities.Role(m.ActorRole),
			CreatedAt:  m.CreatedAt,
		}
		if m.ActorID != nil {
			e.ActorID = uuid.NullUUID{UUID: *m.ActorID, Valid: true}
		}
		out[i] = e
	}
	return out, nil
}
