package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeOrderStats_EarningsFromCompletedOnly(t *testing.T) {
	stats := ComputeOrderStats([]StatusAggregate{
		{Status: OrderStatusPending, Count: 2, Amount: decimal.NewFromInt(300)},
		{Status: OrderStatusConfirmed, Count: 1, Amount: decimal.NewFromInt(150)},
		{Status: OrderStatusInProgress, Count: 1, Amount: decimal.NewFromInt(80)},
		{Status: OrderStatusCompleted, Count: 3, Amount: decimal.RequireFromString("450.50")},
		{Status: OrderStatusCancelled, Count: 4, Amount: decimal.NewFromInt(999)},
	})

	assert.Equal(t, int64(11), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.ConfirmedOrders)
	assert.Equal(t, int64(1), stats.InProgressOrders)
	assert.Equal(t, int64(3), stats.CompletedOrders)
	assert.Equal(t, int64(4), stats.CancelledOrders)
	assert.True(t, stats.TotalEarnings.Equal(decimal.RequireFromString("450.50")), stats.TotalEarnings.String())
}

func TestComputeOrderStats_Empty(t *testing.T) {
	stats := ComputeOrderStats(nil)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalEarnings.IsZero())
}

func TestNewOrderEvent(t *testing.T) {
	now := time.Now()
	merchant := Identity{SubjectID: uuid.New(), Role: RoleMerchant}

	created := NewOrderEvent(uuid.New(), uuid.New(), "", OrderStatusPending, merchant, now)
	assert.False(t, created.FromStatus.Valid)
	assert.True(t, created.ActorID.Valid)
	assert.Equal(t, merchant.SubjectID, created.ActorID.UUID)

	swept := NewOrderEvent(uuid.New(), uuid.New(), OrderStatusPending, OrderStatusCancelled, SystemIdentity(), now)
	assert.Equal(t, "pending", swept.FromStatus.String)
	assert.False(t, swept.ActorID.Valid)
	assert.Equal(t, RoleSystem, swept.ActorRole)
}

func TestScopeFor(t *testing.T) {
	id := Identity{SubjectID: uuid.New(), Role: RoleCustomer}
	assert.Equal(t, OrderScope{Role: RoleCustomer, OwnerID: id.SubjectID}, ScopeFor(id))
}

func TestRoleAndMerchantStatusValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, RoleSystem.Valid())
	assert.True(t, MerchantStatusSuspended.Valid())
	assert.False(t, MerchantStatus("active").Valid())
}
