package repositories

import (
	"context"

	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
)

// UserRepository defines customer and admin account operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
}
