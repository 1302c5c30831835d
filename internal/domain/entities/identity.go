package entities

import (
	"time"

	"github.com/google/uuid"
)

// Role is the kind of principal behind a request.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
	// RoleSystem is used by background jobs; it is never issued in a token.
	RoleSystem Role = "system"
)

// Valid reports whether r can appear in an access token.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleAdmin:
		return true
	}
	return false
}

// Identity is the resolved caller of a request.
type Identity struct {
	SubjectID uuid.UUID
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// SystemIdentity is the identity used by background jobs.
func SystemIdentity() Identity {
	return Identity{Role: RoleSystem}
}
