package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/domain/repositories"
	"marketplace.backend/pkg/logger"
	"marketplace.backend/pkg/utils"
)

// ServiceUsecase manages a merchant's own service listings. Every method is
// keyed by the authenticated merchant id.
type ServiceUsecase struct {
	serviceRepo repositories.ServiceRepository
	uow         repositories.UnitOfWork
}

// NewServiceUsecase creates a new service usecase
func NewServiceUsecase(serviceRepo repositories.ServiceRepository, uow repositories.UnitOfWork) *ServiceUsecase {
	return &ServiceUsecase{serviceRepo: serviceRepo, uow: uow}
}

// Create adds a listing owned by merchantID
func (u *ServiceUsecase) Create(ctx context.Context, merchantID uuid.UUID, input *entities.CreateServiceInput) (*entities.Service, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.Validation("title is required")
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.Validation("price must be greater than 0")
	}
	if input.Duration != nil && *input.Duration <= 0 {
		return nil, domainerrors.Validation("duration must be greater than 0")
	}

	ts := now()
	service := &entities.Service{
		ID:           utils.GenerateUUIDv7(),
		MerchantID:   merchantID,
		Title:        title,
		Price:        input.Price,
		Duration:     null.IntFromPtr(input.Duration),
		Availability: true,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if input.Description != nil {
		service.Description = optionalText(*input.Description)
	}
	if input.Availability != nil {
		service.Availability = *input.Availability
	}

	if err := u.serviceRepo.Create(ctx, service); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	logger.Info(ctx, "Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("merchant_id", merchantID.String()),
	)
	return service, nil
}

// List returns every listing owned by merchantID
func (u *ServiceUsecase) List(ctx context.Context, merchantID uuid.UUID) ([]*entities.Service, error) {
	items, err := u.serviceRepo.ListForMerchant(ctx, merchantID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// Get returns one listing owned by merchantID
func (u *ServiceUsecase) Get(ctx context.Context, merchantID, id uuid.UUID) (*entities.Service, error) {
	service, err := u.serviceRepo.GetForMerchant(ctx, id, merchantID)
	if err != nil {
		return nil, notFoundOr(err, "service not found")
	}
	return service, nil
}

// Update applies the fields present in input and keeps the rest
func (u *ServiceUsecase) Update(ctx context.Context, merchantID, id uuid.UUID, input *entities.UpdateServiceInput) (*entities.Service, error) {
	var updated *entities.Service
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		service, err := u.serviceRepo.GetForMerchant(ctx, id, merchantID)
		if err != nil {
			return notFoundOr(err, "service not found")
		}
		if err := applyServiceUpdate(service, input); err != nil {
			return err
		}
		if err := u.serviceRepo.UpdateForMerchant(ctx, service); err != nil {
			return notFoundOr(err, "service not found")
		}
		updated = service
		return nil
	})
	if err != nil {
		return nil, internalOr(err)
	}
	return updated, nil
}

// Delete removes a listing and returns what was deleted
func (u *ServiceUsecase) Delete(ctx context.Context, merchantID, id uuid.UUID) (*entities.Service, error) {
	var deleted *entities.Service
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		service, err := u.serviceRepo.GetForMerchant(ctx, id, merchantID)
		if err != nil {
			return notFoundOr(err, "service not found")
		}
		if err := u.serviceRepo.DeleteForMerchant(ctx, id, merchantID); err != nil {
			return notFoundOr(err, "service not found")
		}
		deleted = service
		return nil
	})
	if err != nil {
		return nil, internalOr(err)
	}
	logger.Info(ctx, "Service deleted",
		zap.String("service_id", id.String()),
		zap.String("merchant_id", merchantID.String()),
	)
	return deleted, nil
}

func applyServiceUpdate(service *entities.Service, input *entities.UpdateServiceInput) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domainerrors.Validation("title cannot be empty")
		}
		service.Title = title
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return domainerrors.Validation("price must be greater than 0")
		}
		service.Price = *input.Price
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			return domainerrors.Validation("duration must be greater than 0")
		}
		service.Duration = null.IntFrom(*input.Duration)
	}
	if input.Description != nil {
		service.Description = optionalText(*input.Description)
	}
	if input.Availability != nil {
		service.Availability = *input.Availability
	}
	return nil
}

func optionalText(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
