package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/domain/repositories"
	"marketplace.backend/pkg/logger"
	"marketplace.backend/pkg/metrics"
	"marketplace.backend/pkg/utils"
)

// OrderUsecase owns the order lifecycle
type OrderUsecase struct {
	orderRepo   repositories.OrderRepository
	eventRepo   repositories.OrderEventRepository
	serviceRepo repositories.ServiceRepository
	uow         repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	eventRepo repositories.OrderEventRepository,
	serviceRepo repositories.ServiceRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		eventRepo:   eventRepo,
		serviceRepo: serviceRepo,
		uow:         uow,
	}
}

// Create books a service for the calling customer. The merchant, title,
// duration and price are taken from the service, never from the request.
func (u *OrderUsecase) Create(ctx context.Context, customer entities.Identity, input *entities.CreateOrderInput) (*entities.Order, error) {
	if strings.TrimSpace(input.ServiceID) == "" {
		return nil, domainerrors.Validation("service_id is required")
	}
	serviceID, ok := utils.ParseUUID(input.ServiceID)
	if !ok {
		return nil, domainerrors.Validation("service_id must be a valid id")
	}

	service, err := u.serviceRepo.GetPublic(ctx, serviceID)
	if err != nil {
		return nil, notFoundOr(err, "service not found or unavailable")
	}

	ts := now()
	order := &entities.Order{
		ID:              utils.GenerateUUIDv7(),
		CustomerID:      customer.SubjectID,
		MerchantID:      service.MerchantID,
		ServiceID:       service.ID,
		ServiceTitle:    service.Title,
		ServiceDuration: service.Duration,
		TotalAmount:     service.Price,
		PaymentStatus:   entities.PaymentStatusPending,
		Status:          entities.OrderStatusPending,
		CreatedAt:       ts,
		UpdatedAt:       ts,
		BusinessName:    service.BusinessName,
	}
	if input.Notes != nil {
		order.Notes = optionalText(*input.Notes)
	}
	if input.ScheduledDate != nil {
		order.ScheduledDate = null.TimeFrom(input.ScheduledDate.UTC())
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		event := entities.NewOrderEvent(utils.GenerateUUIDv7(), order.ID, "", order.Status, customer, ts)
		return u.eventRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, internalOr(err)
	}

	logger.Info(ctx, "Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("merchant_id", order.MerchantID.String()),
		zap.String("total_amount", order.TotalAmount.String()),
	)
	return order, nil
}

// List returns the caller's orders, optionally filtered by a raw status value
func (u *OrderUsecase) List(ctx context.Context, caller entities.Identity, rawStatus string) ([]*entities.Order, error) {
	var filter entities.OrderFilter
	if strings.TrimSpace(rawStatus) != "" {
		status, ok := entities.ParseOrderStatus(rawStatus)
		if !ok {
			return nil, domainerrors.Validation("invalid status filter: " + rawStatus)
		}
		filter.Status = status
	}
	items, err := u.orderRepo.List(ctx, entities.ScopeFor(caller), filter)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return items, nil
}

// Get returns one of the caller's orders
func (u *OrderUsecase) Get(ctx context.Context, caller entities.Identity, id uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, id, entities.ScopeFor(caller))
	if err != nil {
		return nil, notFoundOr(err, "order not found")
	}
	return order, nil
}

// Events returns the status history of one of the caller's orders
func (u *OrderUsecase) Events(ctx context.Context, caller entities.Identity, id uuid.UUID) ([]*entities.OrderEvent, error) {
	if _, err := u.Get(ctx, caller, id); err != nil {
		return nil, err
	}
	events, err := u.eventRepo.ListByOrder(ctx, id)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return events, nil
}

// Cancel cancels the calling customer's order while it is still pending
func (u *OrderUsecase) Cancel(ctx context.Context, customer entities.Identity, id uuid.UUID) (*entities.StatusChange, error) {
	return u.transition(ctx, customer, id, entities.OrderStatusCancelled)
}

// UpdateStatus moves one of the calling merchant's orders to a new status
func (u *OrderUsecase) UpdateStatus(ctx context.Context, merchant entities.Identity, id uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.StatusChange, error) {
	target, ok := entities.ParseOrderStatus(input.Status)
	if !ok {
		return nil, domainerrors.Validation("invalid status value: " + input.Status)
	}
	return u.transition(ctx, merchant, id, target)
}

// Stats summarizes the calling merchant's orders
func (u *OrderUsecase) Stats(ctx context.Context, merchant entities.Identity) (*entities.OrderStats, error) {
	rows, err := u.orderRepo.AggregateByStatus(ctx, merchant.SubjectID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	stats := entities.ComputeOrderStats(rows)
	return &stats, nil
}

// CancelStalePending cancels pending orders created before cutoff on behalf
// of the system. Orders that changed concurrently are skipped.
func (u *OrderUsecase) CancelStalePending(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	stale, err := u.orderRepo.ListPendingCreatedBefore(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}

	system := entities.SystemIdentity()
	cancelled := 0
	for _, order := range stale {
		_, err := u.transition(ctx, system, order.ID, entities.OrderStatusCancelled)
		switch {
		case err == nil:
			cancelled++
		case errors.Is(err, domainerrors.ErrConflict),
			errors.Is(err, domainerrors.ErrInvalidTransition),
			errors.Is(err, domainerrors.ErrNotFound):
			logger.Debug(ctx, "Skipping stale order", zap.String("order_id", order.ID.String()), zap.Error(err))
		default:
			return cancelled, err
		}
	}
	return cancelled, nil
}

// transition runs the scoped load, table check and compare-and-swap for one
// order inside a single unit of work.
func (u *OrderUsecase) transition(ctx context.Context, actor entities.Identity, id uuid.UUID, target entities.OrderStatus) (*entities.StatusChange, error) {
	scope := entities.ScopeFor(actor)
	var change *entities.StatusChange

	err := u.uow.Do(ctx, func(ctx context.Context) error {
		order, err := u.orderRepo.GetByID(ctx, id, scope)
		if err != nil {
			return notFoundOr(err, "order not found")
		}
		if !entities.CanTransition(actor.Role, order.Status, target) {
			return domainerrors.InvalidTransition(string(order.Status), string(target))
		}
		if err := u.orderRepo.CompareAndSwapStatus(ctx, id, scope, order.Status, target); err != nil {
			if errors.Is(err, domainerrors.ErrConflict) {
				return domainerrors.Conflict("order status changed concurrently, re-fetch and retry")
			}
			return err
		}
		event := entities.NewOrderEvent(utils.GenerateUUIDv7(), id, order.Status, target, actor, now())
		if err := u.eventRepo.Create(ctx, event); err != nil {
			return err
		}
		change = &entities.StatusChange{OrderID: id, PreviousStatus: order.Status, NewStatus: target}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			metrics.ObserveOrderConflict(string(actor.Role))
			logger.Warn(ctx, "Order transition conflict",
				zap.String("order_id", id.String()),
				zap.String("target", string(target)),
			)
		}
		return nil, internalOr(err)
	}

	metrics.ObserveOrderTransition(string(change.PreviousStatus), string(change.NewStatus), string(actor.Role))
	logger.Info(ctx, "Order status changed",
		zap.String("order_id", id.String()),
		zap.String("from", string(change.PreviousStatus)),
		zap.String("to", string(change.NewStatus)),
		zap.String("actor", string(actor.Role)),
	)
	return change, nil
}
