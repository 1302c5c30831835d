package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title        string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Duration     *int
	Description  *string `gorm:"type:text"`
	Availability bool    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
