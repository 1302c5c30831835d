package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/interfaces/http/response"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]*entities.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entities.CategoryDetail, error)
	ListMerchants(ctx context.Context, filter entities.MerchantFilter) ([]*entities.Merchant, error)
	GetMerchant(ctx context.Context, id uuid.UUID) (*entities.MerchantProfile, error)
	ListMerchantServices(ctx context.Context, id uuid.UUID) (*entities.Merchant, []*entities.Service, error)
	ListServices(ctx context.Context, filter entities.ServiceFilter) ([]*entities.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	Search(ctx context.Context, query string) (*entities.SearchResult, error)
}

// CatalogHandler serves the public catalog
type CatalogHandler struct {
	catalogUsecase CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListCategories lists categories with their public counts
// GET /api/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	items, err := h.catalogUsecase.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("categories", items))
}

// GetCategory returns a category with its merchants and services
// GET /api/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "category")
	if !ok {
		return
	}
	detail, err := h.catalogUsecase.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"category":  detail.Category,
		"merchants": countedData(detail.Merchants),
		"services":  countedData(detail.Services),
	})
}

// ListMerchants lists approved merchants
// GET /api/merchants?category=&search=&sortBy=
func (h *CatalogHandler) ListMerchants(c *gin.Context) {
	categoryID, ok := queryID(c, "category")
	if !ok {
		return
	}
	filter := entities.MerchantFilter{
		CategoryID: categoryID,
		Search:     strings.TrimSpace(c.Query("search")),
		SortBy:     entities.MerchantSort(c.Query("sortBy")),
	}

	items, err := h.catalogUsecase.ListMerchants(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("merchants", items))
}

// GetMerchant returns an approved merchant profile
// GET /api/merchants/:id
func (h *CatalogHandler) GetMerchant(c *gin.Context) {
	id, ok := pathID(c, "merchant")
	if !ok {
		return
	}
	profile, err := h.catalogUsecase.GetMerchant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"merchant": profile.Merchant,
		"services": countedData(profile.Services),
	})
}

// ListMerchantServices lists an approved merchant's available services
// GET /api/merchants/:id/services
func (h *CatalogHandler) ListMerchantServices(c *gin.Context) {
	id, ok := pathID(c, "merchant")
	if !ok {
		return
	}
	merchant, services, err := h.catalogUsecase.ListMerchantServices(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	body := listBody("services", services)
	body["merchant"] = merchant.BusinessName
	response.Success(c, http.StatusOK, body)
}

// ListServices lists the public service catalog
// GET /api/services?category=&search=&minPrice=&maxPrice=
func (h *CatalogHandler) ListServices(c *gin.Context) {
	categoryID, ok := queryID(c, "category")
	if !ok {
		return
	}
	minPrice, ok := queryPrice(c, "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := queryPrice(c, "maxPrice")
	if !ok {
		return
	}

	items, err := h.catalogUsecase.ListServices(c.Request.Context(), entities.ServiceFilter{
		CategoryID: categoryID,
		Search:     strings.TrimSpace(c.Query("search")),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("services", items))
}

// GetService returns one public service
// GET /api/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	service, err := h.catalogUsecase.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}

// Search matches services and merchants
// GET /api/search?q=
func (h *CatalogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	result, err := h.catalogUsecase.Search(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"query": strings.TrimSpace(q),
		"results": gin.H{
			"services":  countedData(result.Services),
			"merchants": countedData(result.Merchants),
		},
	})
}

func queryPrice(c *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		response.Error(c, domainerrors.Validation(name+" must be a non-negative number"))
		return nil, false
	}
	return &price, true
}
