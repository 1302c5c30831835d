package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/infrastructure/models"
)

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryRow struct {
	models.Category `gorm:"embedded"`
	MerchantCount   int64
	ServiceCount    int64
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	m := &models.Category{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

// GetByID gets a category with its counts
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var row categoryRow
	if err := r.baseQuery(ctx).Where("categories.id = ?", id).Take(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return row.toEntity(), nil
}

// List returns all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var rows []categoryRow
	if err := r.baseQuery(ctx).Order("categories.category_name").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Category, len(rows))
	for i := range rows {
		out[i] = rows[i].toEntity()
	}
	return out, nil
}

// baseQuery counts approved merchants and their available services.
func (r *CategoryRepository) baseQuery(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Table("categories").
		Select("categories.*, COUNT(DISTINCT merchants.id) AS merchant_count, COUNT(DISTINCT services.id) AS service_count").
		Joins("LEFT JOIN merchants ON merchants.category_id = categories.id AND merchants.status = ?", string(entities.MerchantStatusApproved)).
		Joins("LEFT JOIN services ON services.merchant_id = merchants.id AND services.availability = ?", true).
		Group("categories.id")
}

func (row *categoryRow) toEntity() *entities.Category {
	return &entities.Category{
		ID:            row.ID,
		Name:          row.Name,
		MerchantCount: row.MerchantCount,
		ServiceCount:  row.ServiceCount,
		CreatedAt:     row.CreatedAt,
	}
}
