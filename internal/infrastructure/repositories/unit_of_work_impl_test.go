package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/infrastructure/models"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestUnitOfWork_DoCommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}
	categories := NewCategoryRepository(db)

	err := u.Do(context.Background(), func(ctx context.Context) error {
		return categories.Create(ctx, &entities.Category{ID: newID(), Name: "Cleaning"})
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), countRows(t, db, &models.Category{}))

	err = u.Do(context.Background(), func(ctx context.Context) error {
		if err := categories.Create(ctx, &entities.Category{ID: newID(), Name: "Beauty"}); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	require.Error(t, err)
	require.Equal(t, int64(1), countRows(t, db, &models.Category{}), "second insert must be rolled back")
}

func TestUnitOfWork_NestedDoJoinsOuterTransaction(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}
	categories := NewCategoryRepository(db)

	err := u.Do(context.Background(), func(ctx context.Context) error {
		outer := GetDB(ctx, db)
		return u.Do(ctx, func(inner context.Context) error {
			require.Equal(t, outer, GetDB(inner, db))
			if err := categories.Create(inner, &entities.Category{ID: newID(), Name: "Nested"}); err != nil {
				return err
			}
			return errors.New("inner failure")
		})
	})
	require.Error(t, err)
	require.Zero(t, countRows(t, db, &models.Category{}))
}

func TestUnitOfWork_GetDB(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	require.NotNil(t, u.GetDB(context.Background()))

	tx := db.Begin()
	txCtx := context.WithValue(context.Background(), txKey, tx)
	require.Equal(t, tx, u.GetDB(txCtx))
	tx.Rollback()
}

func TestUnitOfWork_DoBeginFailure(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = u.Do(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
}

func TestUnitOfWork_DoCommitFailure_WithHook(t *testing.T) {
	db := newTestDB(t)
	u := &UnitOfWorkImpl{db: db}
	categories := NewCategoryRepository(db)

	origCommit := commitTx
	t.Cleanup(func() { commitTx = origCommit })
	commitTx = func(tx *gorm.DB) error {
		return errors.New("forced commit fail")
	}

	err := u.Do(context.Background(), func(ctx context.Context) error {
		return categories.Create(ctx, &entities.Category{ID: newID(), Name: "Cleaning"})
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to commit transaction")
}
