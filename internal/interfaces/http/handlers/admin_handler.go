package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/interfaces/http/response"
)

type AdminService interface {
	CreateCategory(ctx context.Context, input *entities.CreateCategoryInput) (*entities.Category, error)
	ListMerchants(ctx context.Context) ([]*entities.Merchant, error)
	UpdateMerchantStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMerchantStatusInput) (*entities.Merchant, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
}

// AdminHandler handles admin endpoints
type AdminHandler struct {
	adminUsecase AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase AdminService) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// CreateCategory adds a category
// POST /api/admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var input entities.CreateCategoryInput
	if !bindJSON(c, &input) {
		return
	}
	category, err := h.adminUsecase.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Category created successfully", "category": category})
}

// ListMerchants lists all merchants
// GET /api/admin/merchants
func (h *AdminHandler) ListMerchants(c *gin.Context) {
	items, err := h.adminUsecase.ListMerchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("merchants", items))
}

// UpdateMerchantStatus approves, rejects or suspends a merchant
// PUT /api/admin/merchants/:id/status
func (h *AdminHandler) UpdateMerchantStatus(c *gin.Context) {
	id, ok := pathID(c, "merchant")
	if !ok {
		return
	}
	var input entities.UpdateMerchantStatusInput
	if !bindJSON(c, &input) {
		return
	}
	merchant, err := h.adminUsecase.UpdateMerchantStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Merchant status updated", "merchant": merchant})
}

// ListUsers lists all customer and admin accounts
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	items, err := h.adminUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("users", items))
}
