package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/interfaces/http/response"
)

type AuthService interface {
	RegisterUser(ctx context.Context, input *entities.UserSignupInput) (*entities.AuthResponse, error)
	LoginUser(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	RegisterMerchant(ctx context.Context, input *entities.MerchantSignupInput) (*entities.AuthResponse, error)
	LoginMerchant(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error)
	Logout(ctx context.Context, identity entities.Identity) error
	Me(ctx context.Context, identity entities.Identity) (*entities.Profile, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// UserSignup registers a customer
// POST /api/auth/user/signup
func (h *AuthHandler) UserSignup(c *gin.Context) {
	var input entities.UserSignupInput
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.authUsecase.RegisterUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "User registered", "auth": resp})
}

// UserLogin signs in a customer or admin
// POST /api/auth/user/login
func (h *AuthHandler) UserLogin(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.authUsecase.LoginUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Login success", "auth": resp})
}

// MerchantSignup registers a merchant awaiting approval
// POST /api/auth/merchant/signup
func (h *AuthHandler) MerchantSignup(c *gin.Context) {
	var input entities.MerchantSignupInput
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.authUsecase.RegisterMerchant(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "Merchant registered", "auth": resp})
}

// MerchantLogin signs in a merchant
// POST /api/auth/merchant/login
func (h *AuthHandler) MerchantLogin(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.authUsecase.LoginMerchant(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Login success", "auth": resp})
}

// Refresh exchanges a refresh token for a new pair
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input entities.RefreshInput
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.authUsecase.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"auth": resp})
}

// Logout revokes the presented access token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	if err := h.authUsecase.Logout(c.Request.Context(), identity); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the caller's account
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	profile, err := h.authUsecase.Me(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
