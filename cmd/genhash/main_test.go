package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_HashesArgument(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-cost", "4", "AdminMarket2026!"}, &out))

	hash := strings.TrimSpace(out.String())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("AdminMarket2026!")))
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, 4, cost)
}

func TestRun_ReadsEnvironment(t *testing.T) {
	t.Setenv("SEED_PASSWORD", "from-env")
	var out bytes.Buffer
	require.NoError(t, run([]string{"-cost", "4"}, &out))
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out.String())), []byte("from-env")))
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("SEED_PASSWORD", "")

	err := run(nil, &bytes.Buffer{})
	require.ErrorContains(t, err, "usage")

	orig := generateHashFn
	t.Cleanup(func() { generateHashFn = orig })
	generateHashFn = func(string) (string, error) { return "", errors.New("boom") }

	err = run([]string{"pw"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "error generating hash")
}
