package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/usecases"
)

func newServiceUsecaseForTest() (*usecases.ServiceUsecase, *MockServiceRepository, *MockUnitOfWork) {
	repo := new(MockServiceRepository)
	uow := new(MockUnitOfWork)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	return usecases.NewServiceUsecase(repo, uow), repo, uow
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestServiceUsecase_Create(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()

	t.Run("owner forced and defaults applied", func(t *testing.T) {
		uc, repo, _ := newServiceUsecaseForTest()
		repo.On("Create", ctx, mock.MatchedBy(func(s *entities.Service) bool {
			return s.MerchantID == merchantID && s.Availability && s.Title == "Haircut"
		})).Return(nil).Once()

		svc, err := uc.Create(ctx, merchantID, &entities.CreateServiceInput{
			Title:       "  Haircut ",
			Price:       decimal.NewFromInt(150),
			Duration:    intPtr(30),
			Description: strPtr("   "),
		})
		require.NoError(t, err)
		assert.Equal(t, merchantID, svc.MerchantID)
		assert.True(t, svc.Price.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, 30, svc.Duration.Int)
		assert.False(t, svc.Description.Valid)
		repo.AssertExpectations(t)
	})

	t.Run("explicit availability", func(t *testing.T) {
		uc, repo, _ := newServiceUsecaseForTest()
		repo.On("Create", ctx, mock.Anything).Return(nil).Once()

		svc, err := uc.Create(ctx, merchantID, &entities.CreateServiceInput{
			Title: "Hidden", Price: decimal.NewFromInt(1), Availability: boolPtr(false),
		})
		require.NoError(t, err)
		assert.False(t, svc.Availability)
		assert.False(t, svc.Duration.Valid)
	})

	cases := []struct {
		name  string
		input entities.CreateServiceInput
	}{
		{"missing title", entities.CreateServiceInput{Title: " ", Price: decimal.NewFromInt(10)}},
		{"zero price", entities.CreateServiceInput{Title: "A", Price: decimal.Zero}},
		{"negative price", entities.CreateServiceInput{Title: "A", Price: decimal.NewFromInt(-5)}},
		{"zero duration", entities.CreateServiceInput{Title: "A", Price: decimal.NewFromInt(5), Duration: intPtr(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, _ := newServiceUsecaseForTest()
			input := tc.input
			_, err := uc.Create(ctx, merchantID, &input)
			assert.Equal(t, domainerrors.CodeValidation, appErr(t, err).Code)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("repository failure", func(t *testing.T) {
		uc, repo, _ := newServiceUsecaseForTest()
		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()
		_, err := uc.Create(ctx, merchantID, &entities.CreateServiceInput{Title: "A", Price: decimal.NewFromInt(1)})
		assert.Equal(t, domainerrors.CodeInternalError, appErr(t, err).Code)
	})
}

func TestServiceUsecase_GetAndList(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newServiceUsecaseForTest()
	merchantID := uuid.New()
	owned := &entities.Service{ID: uuid.New(), MerchantID: merchantID}
	foreign := uuid.New()

	repo.On("GetForMerchant", ctx, owned.ID, merchantID).Return(owned, nil)
	repo.On("GetForMerchant", ctx, foreign, merchantID).Return(nil, domainerrors.ErrNotFound)
	repo.On("ListForMerchant", ctx, merchantID).Return([]*entities.Service{owned}, nil)

	got, err := uc.Get(ctx, merchantID, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, owned, got)

	_, err = uc.Get(ctx, merchantID, foreign)
	assert.Equal(t, domainerrors.CodeNotFound, appErr(t, err).Code)

	items, err := uc.List(ctx, merchantID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestServiceUsecase_Update_Partial(t *testing.T) {
	ctx := context.Background()
	uc, repo, uow := newServiceUsecaseForTest()
	merchantID := uuid.New()
	stored := &entities.Service{
		ID:           uuid.New(),
		MerchantID:   merchantID,
		Title:        "Haircut",
		Price:        decimal.NewFromInt(100),
		Duration:     null.IntFrom(30),
		Description:  null.StringFrom("basic"),
		Availability: true,
	}
	repo.On("GetForMerchant", mock.Anything, stored.ID, merchantID).Return(stored, nil).Once()
	repo.On("UpdateForMerchant", mock.Anything, mock.Anything).Return(nil).Once()

	newPrice := decimal.NewFromInt(120)
	updated, err := uc.Update(ctx, merchantID, stored.ID, &entities.UpdateServiceInput{
		Price:        &newPrice,
		Availability: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut", updated.Title)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, 30, updated.Duration.Int)
	assert.Equal(t, "basic", updated.Description.String)
	assert.False(t, updated.Availability)
	uow.AssertCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestServiceUsecase_Update_Errors(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()

	t.Run("not owned", func(t *testing.T) {
		uc, repo, _ := newServiceUsecaseForTest()
		id := uuid.New()
		repo.On("GetForMerchant", mock.Anything, id, merchantID).Return(nil, domainerrors.ErrNotFound).Once()
		_, err := uc.Update(ctx, merchantID, id, &entities.UpdateServiceInput{Title: strPtr("x")})
		assert.Equal(t, domainerrors.CodeNotFound, appErr(t, err).Code)
	})

	t.Run("empty title", func(t *testing.T) {
		uc, repo, _ := newServiceUsecaseForTest()
		svc := &entities.Service{ID: uuid.New(), MerchantID: merchantID, Title: "A", Price: decimal.NewFromInt(1)}
		repo.On("GetForMerchant", mock.Anything, svc.ID, merchantID).Return(svc, nil).Once()
		_, err := uc.Update(ctx, merchantID, svc.ID, &entities.UpdateServiceInput{Title: strPtr("  ")})
		assert.Equal(t, domainerrors.CodeValidation, appErr(t, err).Code)
		repo.AssertNotCalled(t, "UpdateForMerchant", mock.Anything, mock.Anything)
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc, repo, _ := newServiceUsecaseForTest()
		svc := &entities.Service{ID: uuid.New(), MerchantID: merchantID, Title: "A", Price: decimal.NewFromInt(1)}
		repo.On("GetForMerchant", mock.Anything, svc.ID, merchantID).Return(svc, nil).Once()
		zero := decimal.Zero
		_, err := uc.Update(ctx, merchantID, svc.ID, &entities.UpdateServiceInput{Price: &zero})
		assert.Equal(t, domainerrors.CodeValidation, appErr(t, err).Code)
	})
}

func TestServiceUsecase_Delete_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newServiceUsecaseForTest()
	merchantID := uuid.New()
	svc := &entities.Service{ID: uuid.New(), MerchantID: merchantID, Title: "Gone"}

	repo.On("GetForMerchant", mock.Anything, svc.ID, merchantID).Return(svc, nil).Once()
	repo.On("DeleteForMerchant", mock.Anything, svc.ID, merchantID).Return(nil).Once()

	deleted, err := uc.Delete(ctx, merchantID, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gone", deleted.Title)
	repo.AssertExpectations(t)

	missing := uuid.New()
	repo.On("GetForMerchant", mock.Anything, missing, merchantID).Return(nil, domainerrors.ErrNotFound).Once()
	_, err = uc.Delete(ctx, merchantID, missing)
	assert.Equal(t, domainerrors.CodeNotFound, appErr(t, err).Code)
}
