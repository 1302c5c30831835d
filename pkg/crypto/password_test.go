package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	SetCost(bcrypt.MinCost)
	t.Cleanup(func() { SetCost(DefaultCost) })

	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
	assert.False(t, CheckPassword("Password123!", "not-a-hash"))
}

func TestSetCost_OutOfRangeFallsBack(t *testing.T) {
	t.Cleanup(func() { SetCost(DefaultCost) })

	SetCost(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, Cost())

	SetCost(1)
	assert.Equal(t, DefaultCost, Cost())

	SetCost(bcrypt.MaxCost + 1)
	assert.Equal(t, DefaultCost, Cost())
}

func TestHashPassword_ErrorBranch(t *testing.T) {
	orig := bcryptGenerateFromPassword
	t.Cleanup(func() { bcryptGenerateFromPassword = orig })

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}
