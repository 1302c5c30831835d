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

// ServiceRepository implements service data operations
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type publicServiceRow struct {
	models.Service `gorm:"embedded"`
	BusinessName   string
	MerchantRating float64
	CategoryName   *string
}

// Create creates a new service
func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	return translateError(GetDB(ctx, r.db).Create(toServiceModel(service)).Error)
}

// GetForMerchant gets a service owned by merchantID
func (r *ServiceRepository) GetForMerchant(ctx context.Context, id, merchantID uuid.UUID) (*entities.Service, error) {
	var m models.Service
	err := GetDB(ctx, r.db).Where("id = ? AND merchant_id = ?", id, merchantID).First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toServiceEntity(&m), nil
}

// ListForMerchant lists every service owned by merchantID ordered by title
func (r *ServiceRepository) ListForMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Service, error) {
	var ms []models.Service
	if err := GetDB(ctx, r.db).Where("merchant_id = ?", merchantID).Order("title").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Service, len(ms))
	for i := range ms {
		out[i] = toServiceEntity(&ms[i])
	}
	return out, nil
}

// UpdateForMerchant writes the mutable fields of a service owned by service.MerchantID
func (r *ServiceRepository) UpdateForMerchant(ctx context.Context, service *entities.Service) error {
	service.UpdatedAt = time.Now().UTC()
	res := GetDB(ctx, r.db).Model(&models.Service{}).
		Where("id = ? AND merchant_id = ?", service.ID, service.MerchantID).
		Updates(map[string]interface{}{
			"title":        service.Title,
			"price":        service.Price,
			"duration":     service.Duration.Ptr(),
			"description":  service.Description.Ptr(),
			"availability": service.Availability,
			"updated_at":   service.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteForMerchant hard deletes a service owned by merchantID
func (r *ServiceRepository) DeleteForMerchant(ctx context.Context, id, merchantID uuid.UUID) error {
	res := GetDB(ctx, r.db).Where("id = ? AND merchant_id = ?", id, merchantID).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetPublic gets an available service of an approved merchant
func (r *ServiceRepository) GetPublic(ctx context.Context, id uuid.UUID) (*entities.Service, error) {
	var row publicServiceRow
	if err := r.publicQuery(ctx).Where("services.id = ?", id).Take(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return row.toEntity(), nil
}

// ListPublic lists the public catalog, best rated merchants first
func (r *ServiceRepository) ListPublic(ctx context.Context, filter entities.ServiceFilter) ([]*entities.Service, error) {
	q := r.publicQuery(ctx)
	if filter.CategoryID != nil {
		q = q.Where("merchants.category_id = ?", *filter.CategoryID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = whereServiceMatches(q, s)
	}
	if filter.MinPrice != nil {
		q = q.Where("services.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("services.price <= ?", *filter.MaxPrice)
	}
	return r.scanPublic(q.Order("merchants.rating DESC").Order("services.title"))
}

// ListPublicByMerchant lists one merchant's available services by price
func (r *ServiceRepository) ListPublicByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.Service, error) {
	q := r.publicQuery(ctx).Where("services.merchant_id = ?", merchantID)
	return r.scanPublic(q.Order("services.price").Order("services.title"))
}

// SearchPublic matches available services by title or description
func (r *ServiceRepository) SearchPublic(ctx context.Context, query string, limit int) ([]*entities.Service, error) {
	q := whereServiceMatches(r.publicQuery(ctx), query).Order("merchants.rating DESC").Order("services.title")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.scanPublic(q)
}

func (r *ServiceRepository) publicQuery(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Table("services").
		Select("services.*, merchants.business_name AS business_name, merchants.rating AS merchant_rating, categories.category_name AS category_name").
		Joins("JOIN merchants ON merchants.id = services.merchant_id").
		Joins("LEFT JOIN categories ON categories.id = merchants.category_id").
		Where("services.availability = ? AND merchants.status = ?", true, string(entities.MerchantStatusApproved))
}

func (r *ServiceRepository) scanPublic(q *gorm.DB) ([]*entities.Service, error) {
	var rows []publicServiceRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Service, len(rows))
	for i := range rows {
		out[i] = rows[i].toEntity()
	}
	return out, nil
}

func whereServiceMatches(q *gorm.DB, search string) *gorm.DB {
	pattern := likePattern(strings.ToLower(strings.TrimSpace(search)))
	return q.Where("(LOWER(services.title) LIKE ? OR LOWER(COALESCE(services.description, '')) LIKE ?)", pattern, pattern)
}

func (row *publicServiceRow) toEntity() *entities.Service {
	e := toServiceEntity(&row.Service)
	e.BusinessName = row.BusinessName
	e.MerchantRating = row.MerchantRating
	if row.CategoryName != nil {
		e.CategoryName = *row.CategoryName
	}
	return e
}

func toServiceModel(s *entities.Service) *models.Service {
	return &models.Service{
		ID:           s.ID,
		MerchantID:   s.MerchantID,
		Title:        s.Title,
		Price:        s.Price,
		Duration:     s.Duration.Ptr(),
		Description:  s.Description.Ptr(),
		Availability: s.Availability,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toServiceEntity(m *models.Service) *entities.Service {
	return &entities.Service{
		ID:           m.ID,
		MerchantID:   m.MerchantID,
		Title:        m.Title,
		Price:        m.Price,
		Duration:     null.IntFromPtr(m.Duration),
		Description:  null.StringFromPtr(m.Description),
		Availability: m.Availability,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
