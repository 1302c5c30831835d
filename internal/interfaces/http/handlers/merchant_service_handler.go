package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/interfaces/http/response"
)

type ListingService interface {
	Create(ctx context.Context, merchantID uuid.UUID, input *entities.CreateServiceInput) (*entities.Service, error)
	List(ctx context.Context, merchantID uuid.UUID) ([]*entities.Service, error)
	Get(ctx context.Context, merchantID, id uuid.UUID) (*entities.Service, error)
	Update(ctx context.Context, merchantID, id uuid.UUID, input *entities.UpdateServiceInput) (*entities.Service, error)
	Delete(ctx context.Context, merchantID, id uuid.UUID) (*entities.Service, error)
}

// MerchantServiceHandler manages the calling merchant's listings. The owner
// always comes from the authenticated identity.
type MerchantServiceHandler struct {
	serviceUsecase ListingService
}

// NewMerchantServiceHandler creates a new merchant service handler
func NewMerchantServiceHandler(serviceUsecase ListingService) *MerchantServiceHandler {
	return &MerchantServiceHandler{serviceUsecase: serviceUsecase}
}

// Create adds a listing
// POST /api/merchant/services
func (h *MerchantServiceHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var input entities.CreateServiceInput
	if !bindJSON(c, &input) {
		return
	}

	service, err := h.serviceUsecase.Create(c.Request.Context(), identity.SubjectID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Service created successfully", "service": service})
}

// List lists the caller's listings
// GET /api/merchant/services
func (h *MerchantServiceHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	items, err := h.serviceUsecase.List(c.Request.Context(), identity.SubjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, listBody("services", items))
}

// Get returns one of the caller's listings
// GET /api/merchant/services/:id
func (h *MerchantServiceHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	service, err := h.serviceUsecase.Get(c.Request.Context(), identity.SubjectID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, service)
}

// Update partially updates one of the caller's listings
// PUT /api/merchant/services/:id
func (h *MerchantServiceHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	var input entities.UpdateServiceInput
	if !bindJSON(c, &input) {
		return
	}

	service, err := h.serviceUsecase.Update(c.Request.Context(), identity.SubjectID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Service updated successfully", "service": service})
}

// Delete removes one of the caller's listings
// DELETE /api/merchant/services/:id
func (h *MerchantServiceHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "service")
	if !ok {
		return
	}
	deleted, err := h.serviceUsecase.Delete(c.Request.Context(), identity.SubjectID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Service deleted successfully", "deleted": deleted})
}
