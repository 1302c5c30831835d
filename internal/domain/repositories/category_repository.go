package repositories

import (
	"context"

	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
)

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	List(ctx context.Context) ([]*entities.Category, error)
}
