package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order keeps the service title, duration and price as they were at booking time.
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceTitle    string          `gorm:"type:varchar(255);not null"`
	ServiceDuration *int
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus   string          `gorm:"type:varchar(20);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	Notes           *string         `gorm:"type:text"`
	ScheduledDate   *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

type OrderEvent struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromStatus *string    `gorm:"type:varchar(20)"`
	ToStatus   string     `gorm:"type:varchar(20);not null"`
	ActorRole  string     `gorm:"type:varchar(20);not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
}
