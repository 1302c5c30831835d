package usecases

import (
	"errors"
	"time"

	domainerrors "marketplace.backend/internal/domain/errors"
)

var now = func() time.Time {
	return time.Now().UTC()
}

// notFoundOr turns a repository not-found into a NotFound with message and
// anything unexpected into an internal error.
func notFoundOr(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(message)
	}
	return internalOr(err)
}

// internalOr passes AppErrors through and wraps everything else as internal.
func internalOr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return domainerrors.InternalError(err)
}
