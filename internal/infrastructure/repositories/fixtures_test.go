package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"marketplace.backend/internal/domain/entities"
)

func seedCategory(t *testing.T, db *gorm.DB, name string) *entities.Category {
	t.Helper()
	c := &entities.Category{ID: uuid.New(), Name: name, CreatedAt: time.Now().UTC()}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), c))
	return c
}

func seedMerchant(t *testing.T, db *gorm.DB, name string, status entities.MerchantStatus, categoryID *uuid.UUID) *entities.Merchant {
	t.Helper()
	now := time.Now().UTC()
	m := &entities.Merchant{
		ID:           uuid.New(),
		BusinessName: name,
		Email:        uuid.NewString() + "@merchant.test",
		PasswordHash: "hash",
		CategoryID:   categoryID,
		Description:  null.StringFrom(name + " description"),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, NewMerchantRepository(db).Create(context.Background(), m))
	return m
}

func seedService(t *testing.T, db *gorm.DB, merchantID uuid.UUID, title string, price int64, available bool) *entities.Service {
	t.Helper()
	now := time.Now().UTC()
	s := &entities.Service{
		ID:           uuid.New(),
		MerchantID:   merchantID,
		Title:        title,
		Price:        decimal.NewFromInt(price),
		Duration:     null.IntFrom(60),
		Availability: available,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, NewServiceRepository(db).Create(context.Background(), s))
	return s
}

func seedOrder(t *testing.T, db *gorm.DB, customerID uuid.UUID, service *entities.Service, status entities.OrderStatus, createdAt time.Time) *entities.Order {
	t.Helper()
	o := &entities.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		MerchantID:      service.MerchantID,
		ServiceID:       service.ID,
		ServiceTitle:    service.Title,
		ServiceDuration: service.Duration,
		TotalAmount:     service.Price,
		PaymentStatus:   entities.PaymentStatusPending,
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), o))
	return o
}

func merchantScope(id uuid.UUID) entities.OrderScope {
	return entities.OrderScope{Role: entities.RoleMerchant, OwnerID: id}
}

func customerScope(id uuid.UUID) entities.OrderScope {
	return entities.OrderScope{Role: entities.RoleCustomer, OwnerID: id}
}

func newID() uuid.UUID {
	return uuid.New()
}
