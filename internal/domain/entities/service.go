package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// Service is a bookable listing owned by one merchant
type Service struct {
	ID           uuid.UUID       `json:"service_id"`
	MerchantID   uuid.UUID       `json:"merchant_id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Duration     null.Int        `json:"duration"`
	Description  null.String     `json:"description"`
	Availability bool            `json:"availability"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Populated by public reads only.
	BusinessName   string  `json:"business_name,omitempty"`
	MerchantRating float64 `json:"merchant_rating,omitempty"`
	CategoryName   string  `json:"category_name,omitempty"`
}

// CreateServiceInput represents input for creating a service. The owner is
// never read from the body.
type CreateServiceInput struct {
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Duration     *int            `json:"duration"`
	Description  *string         `json:"description"`
	Availability *bool           `json:"availability"`
}

// UpdateServiceInput is a partial update; nil fields keep their stored value.
type UpdateServiceInput struct {
	Title        *string          `json:"title"`
	Price        *decimal.Decimal `json:"price"`
	Duration     *int             `json:"duration"`
	Description  *string          `json:"description"`
	Availability *bool            `json:"availability"`
}

// ServiceFilter narrows the public service listing
type ServiceFilter struct {
	CategoryID *uuid.UUID
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// SearchResult is the response of the global catalog search
type SearchResult struct {
	Services  []*Service  `json:"services"`
	Merchants []*Merchant `json:"merchants"`
}
