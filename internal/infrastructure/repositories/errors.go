package repositories

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	domainerrors "marketplace.backend/internal/domain/errors"
)

const pqUniqueViolation = "23505"

// translateError maps driver and gorm errors onto domain sentinels.
// gorm's postgres dialector only translates pgconn errors, so unique
// violations raised through lib/pq are recognized here.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrAlreadyExists
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

func likePattern(q string) string {
	return "%" + q + "%"
}
