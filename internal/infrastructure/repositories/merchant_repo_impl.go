package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/infrastructure/models"
)

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

type merchantRow struct {
	models.Merchant `gorm:"embedded"`
	CategoryName    *string
	ServiceCount    int64
}

// Create creates a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	m := &models.Merchant{
		ID:           merchant.ID,
		BusinessName: merchant.BusinessName,
		Email:        merchant.Email,
		PasswordHash: merchant.PasswordHash,
		CategoryID:   merchant.CategoryID,
		Description:  merchant.Description.Ptr(),
		Rating:       merchant.Rating,
		Status:       string(merchant.Status),
		CreatedAt:    merchant.CreatedAt,
		UpdatedAt:    merchant.UpdatedAt,
	}
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

// GetByID gets a merchant by ID regardless of status
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var row merchantRow
	err := r.baseQuery(ctx).Where("merchants.id = ?", id).Take(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return row.toEntity(), nil
}

// GetByEmail gets a merchant by login email
func (r *MerchantRepository) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	var m models.Merchant
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return (&merchantRow{Merchant: m}).toEntity(), nil
}

// UpdateStatus sets a merchant's verification status
func (r *MerchantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MerchantStatus) error {
	res := GetDB(ctx, r.db).Model(&models.Merchant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns every merchant for administration
func (r *MerchantRepository) List(ctx context.Context) ([]*entities.Merchant, error) {
	var rows []merchantRow
	if err := r.baseQuery(ctx).Order("merchants.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toMerchantEntities(rows), nil
}

// GetApproved gets an approved merchant; other statuses are not found
func (r *MerchantRepository) GetApproved(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	var row merchantRow
	err := r.baseQuery(ctx).
		Where("merchants.id = ? AND merchants.status = ?", id, string(entities.MerchantStatusApproved)).
		Take(&row).Error
	if err != nil {
		return nil, translateError(err)
	}
	return row.toEntity(), nil
}

// ListApproved returns approved merchants with their available service counts
func (r *MerchantRepository) ListApproved(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error) {
	return r.listApproved(ctx, filter, 0)
}

// SearchApproved matches approved merchants by name or description
func (r *MerchantRepository) SearchApproved(ctx context.Context, query string, limit int) ([]*entities.Merchant, error) {
	return r.listApproved(ctx, entities.MerchantFilter{Search: query}, limit)
}

func (r *MerchantRepository) listApproved(ctx context.Context, filter entities.MerchantFilter, limit int) ([]*entities.Merchant, error) {
	q := r.baseQuery(ctx).Where("merchants.status = ?", string(entities.MerchantStatusApproved))
	if filter.CategoryID != nil {
		q = q.Where("merchants.category_id = ?", *filter.CategoryID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := likePattern(strings.ToLower(s))
		q = q.Where("(LOWER(merchants.business_name) LIKE ? OR LOWER(COALESCE(merchants.description, '')) LIKE ?)", pattern, pattern)
	}

	switch filter.SortBy {
	case entities.MerchantSortNewest:
		q = q.Order("merchants.created_at DESC")
	case entities.MerchantSortServices:
		q = q.Order("service_count DESC").Order("merchants.business_name")
	default:
		q = q.Order("merchants.rating DESC").Order("merchants.business_name")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []merchantRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toMerchantEntities(rows), nil
}

// baseQuery joins the category name and counts available services per merchant.
func (r *MerchantRepository) baseQuery(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Table("merchants").
		Select("merchants.*, categories.category_name AS category_name, COUNT(services.id) AS service_count").
		Joins("LEFT JOIN categories ON categories.id = merchants.category_id").
		Joins("LEFT JOIN services ON services.merchant_id = merchants.id AND services.availability = ?", true).
		Group("merchants.id, categories.category_name")
}

func toMerchantEntities(rows []merchantRow) []*entities.Merchant {
	out := make([]*entities.Merchant, len(rows))
	for i := range rows {
		out[i] = rows[i].toEntity()
	}
	return out
}

func (row *merchantRow) toEntity() *entities.Merchant {
	m := row.Merchant
	e := &entities.Merchant{
		ID:           m.ID,
		BusinessName: m.BusinessName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CategoryID:   m.CategoryID,
		Description:  null.StringFromPtr(m.Description),
		Rating:       m.Rating,
		Status:       entities.MerchantStatus(m.Status),
		ServiceCount: row.ServiceCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if row.CategoryName != nil {
		e.CategoryName = *row.CategoryName
	}
	return e
}
