package repositories

import (
	"context"

	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByEmail(ctx context.Context, email string) (*entities.Merchant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MerchantStatus) error
	List(ctx context.Context) ([]*entities.Merchant, error)

	// Public reads only ever see approved merchants.
	GetApproved(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	ListApproved(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error)
	SearchApproved(ctx context.Context, query string, limit int) ([]*entities.Merchant, error)
}
