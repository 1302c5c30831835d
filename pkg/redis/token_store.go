package redis

import (
	"context"
	"errors"
	"time"
)

const revokedTokenPrefix = "revoked_token:"

var (
	setRevokedValue  = Set
	existsRevokedKey = Exists
)

// RevokedTokenStore remembers logged-out token ids until the token would
// have expired on its own.
type RevokedTokenStore struct{}

// NewRevokedTokenStore creates a store backed by the shared client
func NewRevokedTokenStore() *RevokedTokenStore {
	return &RevokedTokenStore{}
}

// Revoke marks tokenID as revoked for ttl. Tokens that are already expired
// are not stored.
func (s *RevokedTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return errors.New("token id is required")
	}
	if ttl <= 0 {
		return nil
	}
	return setRevokedValue(ctx, revokedTokenPrefix+tokenID, "1", ttl)
}

// IsRevoked reports whether tokenID has been revoked
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	return existsRevokedKey(ctx, revokedTokenPrefix+tokenID)
}
