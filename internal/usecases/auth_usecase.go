package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/domain/repositories"
	"marketplace.backend/pkg/crypto"
	"marketplace.backend/pkg/jwt"
	"marketplace.backend/pkg/logger"
	"marketplace.backend/pkg/utils"
)

// TokenStore tracks revoked token ids
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthUsecase handles accounts and the identity of every request
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	merchantRepo repositories.MerchantRepository
	categoryRepo repositories.CategoryRepository
	jwtService   *jwt.JWTService
	tokens       TokenStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	merchantRepo repositories.MerchantRepository,
	categoryRepo repositories.CategoryRepository,
	jwtService *jwt.JWTService,
	tokens TokenStore,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		merchantRepo: merchantRepo,
		categoryRepo: categoryRepo,
		jwtService:   jwtService,
		tokens:       tokens,
	}
}

// RegisterUser creates a customer account and signs it in
func (u *AuthUsecase) RegisterUser(ctx context.Context, input *entities.UserSignupInput) (*entities.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	if _, err := u.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domainerrors.Duplicate("email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	ts := now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         entities.RoleCustomer,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		user.Phone = null.StringFrom(phone)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Duplicate("email already registered")
		}
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "User registered", zap.String("user_id", user.ID.String()))
	resp, err := u.issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	resp.User = user
	return resp, nil
}

// LoginUser authenticates a customer or admin
func (u *AuthUsecase) LoginUser(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials()
		}
		return nil, domainerrors.InternalError(err)
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials()
	}

	resp, err := u.issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	resp.User = user
	return resp, nil
}

// RegisterMerchant creates a merchant account awaiting approval and signs it in
func (u *AuthUsecase) RegisterMerchant(ctx context.Context, input *entities.MerchantSignupInput) (*entities.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	if _, err := u.merchantRepo.GetByEmail(ctx, email); err == nil {
		return nil, domainerrors.Duplicate("email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	if input.CategoryID != nil {
		if _, err := u.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.Validation("category does not exist")
			}
			return nil, domainerrors.InternalError(err)
		}
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	ts := now()
	merchant := &entities.Merchant{
		ID:           utils.GenerateUUIDv7(),
		BusinessName: strings.TrimSpace(input.BusinessName),
		Email:        email,
		PasswordHash: hash,
		CategoryID:   input.CategoryID,
		Status:       entities.MerchantStatusPending,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		merchant.Description = null.StringFrom(desc)
	}

	if err := u.merchantRepo.Create(ctx, merchant); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Duplicate("email already registered")
		}
		return nil, domainerrors.InternalError(err)
	}

	logger.Info(ctx, "Merchant registered", zap.String("merchant_id", merchant.ID.String()))
	resp, err := u.issue(merchant.ID, entities.RoleMerchant)
	if err != nil {
		return nil, err
	}
	resp.Merchant = merchant
	return resp, nil
}

// LoginMerchant authenticates a merchant
func (u *AuthUsecase) LoginMerchant(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	merchant, err := u.merchantRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials()
		}
		return nil, domainerrors.InternalError(err)
	}
	if !crypto.CheckPassword(input.Password, merchant.PasswordHash) {
		return nil, domainerrors.InvalidCredentials()
	}

	resp, err := u.issue(merchant.ID, entities.RoleMerchant)
	if err != nil {
		return nil, err
	}
	resp.Merchant = merchant
	return resp, nil
}

// Refresh exchanges a refresh token for a new pair. The presented refresh
// token is revoked so it cannot be replayed.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateTokenOfType(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.Unauthenticated("invalid or expired refresh token")
	}
	if err := u.ensureNotRevoked(ctx, claims.ID); err != nil {
		return nil, err
	}

	role := entities.Role(claims.Role)
	switch role {
	case entities.RoleMerchant:
		if _, err := u.merchantRepo.GetByID(ctx, claims.SubjectID); err != nil {
			return nil, subjectGone(err)
		}
	case entities.RoleCustomer, entities.RoleAdmin:
		user, err := u.userRepo.GetByID(ctx, claims.SubjectID)
		if err != nil {
			return nil, subjectGone(err)
		}
		role = user.Role
	default:
		return nil, domainerrors.Unauthenticated("invalid or expired refresh token")
	}

	if claims.ExpiresAt != nil {
		if err := u.tokens.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			return nil, domainerrors.InternalError(err)
		}
	}
	return u.issue(claims.SubjectID, role)
}

// Logout revokes the caller's access token until it expires
func (u *AuthUsecase) Logout(ctx context.Context, identity entities.Identity) error {
	if identity.TokenID == "" {
		return nil
	}
	if err := u.tokens.Revoke(ctx, identity.TokenID, time.Until(identity.ExpiresAt)); err != nil {
		return domainerrors.InternalError(err)
	}
	logger.Info(ctx, "Token revoked", zap.String("subject_id", identity.SubjectID.String()))
	return nil
}

// Me returns the caller's own account
func (u *AuthUsecase) Me(ctx context.Context, identity entities.Identity) (*entities.Profile, error) {
	profile := &entities.Profile{Role: identity.Role}
	if identity.Role == entities.RoleMerchant {
		merchant, err := u.merchantRepo.GetByID(ctx, identity.SubjectID)
		if err != nil {
			return nil, notFoundOr(err, "account not found")
		}
		profile.Merchant = merchant
		return profile, nil
	}
	user, err := u.userRepo.GetByID(ctx, identity.SubjectID)
	if err != nil {
		return nil, notFoundOr(err, "account not found")
	}
	profile.User = user
	return profile, nil
}

// Authenticate resolves a bearer access token into the caller identity
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (entities.Identity, error) {
	if token == "" {
		return entities.Identity{}, domainerrors.Unauthenticated("authorization header required")
	}
	claims, err := u.jwtService.ValidateTokenOfType(token, jwt.TokenTypeAccess)
	if err != nil {
		return entities.Identity{}, domainerrors.Unauthenticated("invalid or expired token")
	}
	role := entities.Role(claims.Role)
	if !role.Valid() {
		return entities.Identity{}, domainerrors.Unauthenticated("invalid or expired token")
	}
	if err := u.ensureNotRevoked(ctx, claims.ID); err != nil {
		return entities.Identity{}, err
	}

	identity := entities.Identity{
		SubjectID: claims.SubjectID,
		Role:      role,
		TokenID:   claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

func (u *AuthUsecase) ensureNotRevoked(ctx context.Context, tokenID string) error {
	revoked, err := u.tokens.IsRevoked(ctx, tokenID)
	if err != nil {
		logger.Error(ctx, "Revoked token lookup failed", zap.Error(err))
		return domainerrors.InternalError(err)
	}
	if revoked {
		return domainerrors.Unauthenticated("token has been revoked")
	}
	return nil
}

func (u *AuthUsecase) issue(subjectID uuid.UUID, role entities.Role) (*entities.AuthResponse, error) {
	pair, err := u.jwtService.GenerateTokenPair(subjectID, string(role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		Role:         role,
	}, nil
}

func subjectGone(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.Unauthenticated("account no longer exists")
	}
	return domainerrors.InternalError(err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
