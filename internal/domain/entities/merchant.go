package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantStatus represents merchant verification status
type MerchantStatus string

const (
	MerchantStatusPending   MerchantStatus = "pending"
	MerchantStatusApproved  MerchantStatus = "approved"
	MerchantStatusRejected  MerchantStatus = "rejected"
	MerchantStatusSuspended MerchantStatus = "suspended"
)

// Valid reports whether s is a known merchant status.
func (s MerchantStatus) Valid() bool {
	switch s {
	case MerchantStatusPending, MerchantStatusApproved, MerchantStatusRejected, MerchantStatusSuspended:
		return true
	}
	return false
}

// Merchant represents a merchant (tenant) account
type Merchant struct {
	ID           uuid.UUID      `json:"merchant_id"`
	BusinessName string         `json:"business_name"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	CategoryID   *uuid.UUID     `json:"category_id,omitempty"`
	CategoryName string         `json:"category_name,omitempty"`
	Description  null.String    `json:"description"`
	Rating       float64        `json:"rating"`
	Status       MerchantStatus `json:"status"`
	ServiceCount int64          `json:"service_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// MerchantSort orders the public merchant listing
type MerchantSort string

const (
	MerchantSortRating   MerchantSort = "rating"
	MerchantSortNewest   MerchantSort = "newest"
	MerchantSortServices MerchantSort = "services"
)

// MerchantFilter narrows the public merchant listing
type MerchantFilter struct {
	CategoryID *uuid.UUID
	Search     string
	SortBy     MerchantSort
}

// UpdateMerchantStatusInput represents an admin status decision
type UpdateMerchantStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// MerchantProfile is the public view of one merchant and its catalog.
type MerchantProfile struct {
	Merchant *Merchant `json:"merchant"`
	Services []*Service `json:"services"`
}
