package entities

import "strings"

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every state in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusInProgress,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// merchantTransitions is the full transition table for the owning merchant.
var merchantTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted},
}

// ParseOrderStatus accepts a known status value, case-insensitively.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range OrderStatuses {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// AllowedTransitions returns the states actor may move an order to from from.
// Customers and the system sweeper may only cancel a pending order.
func AllowedTransitions(actor Role, from OrderStatus) []OrderStatus {
	switch actor {
	case RoleMerchant:
		return merchantTransitions[from]
	case RoleCustomer, RoleSystem:
		if from == OrderStatusPending {
			return []OrderStatus{OrderStatusCancelled}
		}
	}
	return nil
}

// CanTransition reports whether actor may move an order from from to to.
func CanTransition(actor Role, from, to OrderStatus) bool {
	for _, next := range AllowedTransitions(actor, from) {
		if next == to {
			return true
		}
	}
	return false
}
