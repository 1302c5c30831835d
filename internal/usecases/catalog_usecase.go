package usecases

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/domain/repositories"
)

const (
	minSearchLength = 2
	searchLimit     = 10
)

// CatalogUsecase serves the public, unauthenticated catalog
type CatalogUsecase struct {
	categoryRepo repositories.CategoryRepository
	merchantRepo repositories.MerchantRepository
	serviceRepo  repositories.ServiceRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	categoryRepo repositories.CategoryRepository,
	merchantRepo repositories.MerchantRepository,
	serviceRepo repositories.ServiceRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		merchantRepo: merchantRepo,
		serviceRepo:  serviceRepo,
	}
}

// ListCategories returns all categories with their public counts
func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	items, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// GetCategory returns a category with its approved merchants and their services
func (u *CatalogUsecase) GetCategory(ctx context.Context, id uuid.UUID) (*entities.CategoryDetail, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "category not found")
	}
	merchants, err := u.merchantRepo.ListApproved(ctx, entities.MerchantFilter{CategoryID: &id})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	services, err := u.serviceRepo.ListPublic(ctx, entities.ServiceFilter{CategoryID: &id})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.CategoryDetail{Category: category, Merchants: merchants, Services: services}, nil
}

// ListMerchants returns approved merchants
func (u *CatalogUsecase) ListMerchants(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error) {
	switch filter.SortBy {
	case "", entities.MerchantSortRating, entities.MerchantSortNewest, entities.MerchantSortServices:
	default:
		return nil, domainerrors.Validation("sortBy must be one of rating, newest, services")
	}
	items, err := u.merchantRepo.ListApproved(ctx, filter)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// GetMerchant returns an approved merchant and its available services
func (u *CatalogUsecase) GetMerchant(ctx context.Context, id uuid.UUID) (*entities.MerchantProfile, error) {
	merchant, services, err := u.merchantWithServices(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entities.MerchantProfile{Merchant: merchant, Services: services}, nil
}

// ListMerchantServices returns the available services of an approved merchant
func (u *CatalogUsecase) ListMerchantServices(ctx context.Context, id uuid.UUID) (*entities.Merchant, []*entities.Service, error) {
	return u.merchantWithServices(ctx, id)
}

// ListServices returns the public service catalog
func (u *CatalogUsecase) ListServices(ctx context.Context, filter entities.ServiceFilter) ([]*entities.Service, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domainerrors.Validation("minPrice cannot exceed maxPrice")
	}
	items, err := u.serviceRepo.ListPublic(ctx, filter)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// GetService returns one public service
func (u *CatalogUsecase) GetService(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	service, err := u.serviceRepo.GetPublic(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "service not found")
	}
	return service, nil
}

// Search matches public services and merchants by name and description
func (u *CatalogUsecase) Search(ctx context.Context, query string) (*entities.SearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLength {
		return nil, domainerrors.Validation("search query must be at least 2 characters")
	}
	services, err := u.serviceRepo.SearchPublic(ctx, query, searchLimit)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	merchants, err := u.merchantRepo.SearchApproved(ctx, query, searchLimit)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.SearchResult{Services: services, Merchants: merchants}, nil
}

func (u *CatalogUsecase) merchantWithServices(ctx context.Context, id uuid.UUID) (*entities.Merchant, []*entities.Service, error) {
	merchant, err := u.merchantRepo.GetApproved(ctx, id)
	if err != nil {
		return nil, nil, notFoundOr(err, "merchant not found")
	}
	services, err := u.serviceRepo.ListPublicByMerchant(ctx, id)
	if err != nil {
		return nil, nil, domainerrors.InternalError(err)
	}
	return merchant, services, nil
}
