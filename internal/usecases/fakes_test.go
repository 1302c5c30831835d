package usecases_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
)

// fakeOrderRepo is an in-memory OrderRepository with the same scope and
// compare-and-swap semantics as the gorm implementation. When gated is set,
// that many GetByID calls block until all of them have read.
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entities.Order
	gate   *sync.WaitGroup
	gated  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*entities.Order{}}
}

func (r *fakeOrderRepo) holdReaders(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gate = &sync.WaitGroup{}
	r.gate.Add(n)
	r.gated = n
}

func visible(o *entities.Order, scope entities.OrderScope) bool {
	switch scope.Role {
	case entities.RoleMerchant:
		return o.MerchantID == scope.OwnerID
	case entities.RoleCustomer:
		return o.CustomerID == scope.OwnerID
	case entities.RoleSystem:
		return true
	}
	return false
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID, scope entities.OrderScope) (*entities.Order, error) {
	r.mu.Lock()
	o, ok := r.orders[id]
	if !ok || !visible(o, scope) {
		r.mu.Unlock()
		return nil, domainerrors.ErrNotFound
	}
	cp := *o
	var gate *sync.WaitGroup
	if r.gated > 0 {
		r.gated--
		gate = r.gate
	}
	r.mu.Unlock()

	if gate != nil {
		gate.Done()
		gate.Wait()
	}
	return &cp, nil
}

func (r *fakeOrderRepo) List(_ context.Context, scope entities.OrderScope, filter entities.OrderFilter) ([]*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.Order{}
	for _, o := range r.orders {
		if !visible(o, scope) || (filter.Status != "" && o.Status != filter.Status) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) CompareAndSwapStatus(_ context.Context, id uuid.UUID, scope entities.OrderScope, expected, next entities.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || !visible(o, scope) || o.Status != expected {
		return domainerrors.ErrConflict
	}
	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeOrderRepo) ListPendingCreatedBefore(_ context.Context, cutoff time.Time, limit int) ([]*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.Order{}
	for _, o := range r.orders {
		if o.Status == entities.OrderStatusPending && o.CreatedAt.Before(cutoff) {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeOrderRepo) AggregateByStatus(_ context.Context, merchantID uuid.UUID) ([]entities.StatusAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byStatus := map[entities.OrderStatus]*entities.StatusAggregate{}
	for _, o := range r.orders {
		if o.MerchantID != merchantID {
			continue
		}
		agg, ok := byStatus[o.Status]
		if !ok {
			agg = &entities.StatusAggregate{Status: o.Status}
			byStatus[o.Status] = agg
		}
		agg.Count++
		agg.Amount = agg.Amount.Add(o.TotalAmount)
	}
	out := make([]entities.StatusAggregate, 0, len(byStatus))
	for _, agg := range byStatus {
		out = append(out, *agg)
	}
	return out, nil
}

func (r *fakeOrderRepo) status(id uuid.UUID) entities.OrderStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[id].Status
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []*entities.OrderEvent
}

func (r *fakeEventRepo) Create(_ context.Context, event *entities.OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *fakeEventRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]*entities.OrderEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entities.OrderEvent{}
	for _, e := range r.events {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}
