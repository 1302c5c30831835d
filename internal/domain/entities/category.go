package entities

import (
	"time"

	"github.com/google/uuid"
)

// Category groups merchants
type Category struct {
	ID            uuid.UUID `json:"category_id"`
	Name          string    `json:"category_name"`
	MerchantCount int64     `json:"merchant_count"`
	ServiceCount  int64     `json:"service_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCategoryInput represents input for creating a category
type CreateCategoryInput struct {
	CategoryName string `json:"category_name" binding:"required,min=2,max=100"`
}

// CategoryDetail is a category with its approved merchants and available services.
type CategoryDetail struct {
	Category  *Category   `json:"category"`
	Merchants []*Merchant `json:"merchants"`
	Services  []*Service  `json:"services"`
}
