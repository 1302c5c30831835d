package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/domain/repositories"
	"marketplace.backend/pkg/logger"
	"marketplace.backend/pkg/utils"
)

// AdminUsecase handles platform administration
type AdminUsecase struct {
	userRepo     repositories.UserRepository
	merchantRepo repositories.MerchantRepository
	categoryRepo repositories.CategoryRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	merchantRepo repositories.MerchantRepository,
	categoryRepo repositories.CategoryRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:     userRepo,
		merchantRepo: merchantRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateCategory adds a category; names are unique
func (u *AdminUsecase) CreateCategory(ctx context.Context, input *entities.CreateCategoryInput) (*entities.Category, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return nil, domainerrors.Validation("category_name is required")
	}
	category := &entities.Category{
		ID:        utils.GenerateUUIDv7(),
		Name:      name,
		CreatedAt: now(),
	}
	if err := u.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Duplicate("category already exists")
		}
		return nil, domainerrors.InternalError(err)
	}
	return category, nil
}

// ListMerchants returns every merchant regardless of status
func (u *AdminUsecase) ListMerchants(ctx context.Context) ([]*entities.Merchant, error) {
	items, err := u.merchantRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// UpdateMerchantStatus approves, rejects or suspends a merchant
func (u *AdminUsecase) UpdateMerchantStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMerchantStatusInput) (*entities.Merchant, error) {
	status := entities.MerchantStatus(strings.ToLower(strings.TrimSpace(input.Status)))
	if !status.Valid() {
		return nil, domainerrors.Validation("status must be one of pending, approved, rejected, suspended")
	}
	if err := u.merchantRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFoundOr(err, "merchant not found")
	}
	merchant, err := u.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "merchant not found")
	}
	logger.Info(ctx, "Merchant status changed",
		zap.String("merchant_id", id.String()),
		zap.String("status", string(status)),
	)
	return merchant, nil
}

// ListUsers returns every customer and admin account
func (u *AdminUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	items, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}
