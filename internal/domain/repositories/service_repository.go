package repositories

import (
	"context"

	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
)

// ServiceRepository defines service data operations. Merchant-facing
// methods take the owning merchant id and never match another tenant's rows.
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetForMerchant(ctx context.Context, id, merchantID uuid.UUID) (*entities.Service, error)
	ListForMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Service, error)
	UpdateForMerchant(ctx context.Context, service *entities.Service) error
	DeleteForMerchant(ctx context.Context, id, merchantID uuid.UUID) error

	// Public reads see available services of approved merchants only.
	GetPublic(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	ListPublic(ctx context.Context, filter entities.ServiceFilter) ([]*entities.Service, error)
	ListPublicByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Service, error)
	SearchPublic(ctx context.Context, query string, limit int) ([]*entities.Service, error)
}
