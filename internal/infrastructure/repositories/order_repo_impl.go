package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/infrastructure/models"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderRow struct {
	models.Order  `gorm:"embedded"`
	BusinessName  *string
	CustomerName  *string
	CustomerPhone *string
}

// applyScope adds the owner predicate for scope. Unknown roles match nothing.
func applyScope(q *gorm.DB, scope entities.OrderScope) *gorm.DB {
	switch scope.Role {
	case entities.RoleMerchant:
		return q.Where("orders.merchant_id = ?", scope.OwnerID)
	case entities.RoleCustomer:
		return q.Where("orders.customer_id = ?", scope.OwnerID)
	case entities.RoleSystem:
		return q
	default:
		return q.Where("1 = 0")
	}
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	m := &models.Order{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		MerchantID:      order.MerchantID,
		ServiceID:       order.ServiceID,
		ServiceTitle:    order.ServiceTitle,
		ServiceDuration: order.ServiceDuration.Ptr(),
		TotalAmount:     order.TotalAmount,
		PaymentStatus:   string(order.PaymentStatus),
		Status:          string(order.Status),
		Notes:           order.Notes.Ptr(),
		ScheduledDate:   order.ScheduledDate.Ptr(),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

// GetByID gets an order visible under scope
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID, scope entities.OrderScope) (*entities.Order, error) {
	var row orderRow
	q := applyScope(r.baseQuery(ctx).Where("orders.id = ?", id), scope)
	if err := q.Take(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return row.toEntity(), nil
}

// List lists orders visible under scope, newest first
func (r *OrderRepository) List(ctx context.Context, scope entities.OrderScope, filter entities.OrderFilter) ([]*entities.Order, error) {
	q := applyScope(r.baseQuery(ctx), scope)
	if filter.Status != "" {
		q = q.Where("orders.status = ?", string(filter.Status))
	}
	var rows []orderRow
	if err := q.Order("orders.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Order, len(rows))
	for i := range rows {
		out[i] = rows[i].toEntity()
	}
	return out, nil
}

// CompareAndSwapStatus moves an order from expected to next in one statement
func (r *OrderRepository) CompareAndSwapStatus(ctx context.Context, id uuid.UUID, scope entities.OrderScope, expected, next entities.OrderStatus) error {
	q := GetDB(ctx, r.db).Model(&models.Order{}).
		Where("orders.id = ? AND orders.status = ?", id, string(expected))
	res := applyScope(q, scope).Updates(map[string]interface{}{
		"status":     string(next),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}
	return nil
}

// ListPendingCreatedBefore returns the oldest pending orders created before cutoff
func (r *OrderRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Order, error) {
	var ms []models.Order
	q := GetDB(ctx, r.db).
		Where("status = ? AND created_at < ?", string(entities.OrderStatusPending), cutoff).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Order, len(ms))
	for i := range ms {
		out[i] = (&orderRow{Order: ms[i]}).toEntity()
	}
	return out, nil
}

// AggregateByStatus counts a merchant's orders and sums their totals per status
func (r *OrderRepository) AggregateByStatus(ctx context.Context, merchantID uuid.UUID) ([]entities.StatusAggregate, error) {
	var rows []struct {
		Status string
		Count  int64
		Amount decimal.Decimal
	}
	err := GetDB(ctx, r.db).Model(&models.Order{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS amount").
		Where("merchant_id = ?", merchantID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.StatusAggregate, len(rows))
	for i, row := range rows {
		out[i] = entities.StatusAggregate{
			Status: entities.OrderStatus(row.Status),
			Count:  row.Count,
			Amount: row.Amount,
		}
	}
	return out, nil
}

func (r *OrderRepository) baseQuery(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Table("orders").
		Select("orders.*, merchants.business_name AS business_name, users.name AS customer_name, users.phone AS customer_phone").
		Joins("LEFT JOIN merchants ON merchants.id = orders.merchant_id").
		Joins("LEFT JOIN users ON users.id = orders.customer_id")
}

func (row *orderRow) toEntity() *entities.Order {
	m := row.Order
	e := &entities.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		MerchantID:      m.MerchantID,
		ServiceID:       m.ServiceID,
		ServiceTitle:    m.ServiceTitle,
		ServiceDuration: null.IntFromPtr(m.ServiceDuration),
		TotalAmount:     m.TotalAmount,
		PaymentStatus:   entities.PaymentStatus(m.PaymentStatus),
		Status:          entities.OrderStatus(m.Status),
		Notes:           null.StringFromPtr(m.Notes),
		ScheduledDate:   null.TimeFromPtr(m.ScheduledDate),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if row.BusinessName != nil {
		e.BusinessName = *row.BusinessName
	}
	if row.CustomerName != nil {
		e.CustomerName = *row.CustomerName
	}
	if row.CustomerPhone != nil {
		e.CustomerPhone = *row.CustomerPhone
	}
	return e
}
