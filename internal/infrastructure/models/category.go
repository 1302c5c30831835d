package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"column:category_name;type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
}
