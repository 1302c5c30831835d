package models

import (
	"time"

	"github.com/google/uuid"
)

type Merchant struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessName string     `gorm:"type:varchar(255);not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	Description  *string    `gorm:"type:text"`
	Rating       float64    `gorm:"type:decimal(3,2);not null;default:0"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
