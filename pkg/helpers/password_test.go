package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	secrets := []string{"hunter22", "correct horse battery staple", "p@ssw0rd!", "änderung"}
	for _, secret := range secrets {
		hash, err := HashPassword(secret)
		require.NoError(t, err)
		require.NotEqual(t, secret, hash)
		require.True(t, CompareHashAndPassword(hash, secret))
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("same-secret")
	require.NoError(t, err)
	h2, err := HashPassword("same-secret")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestHashPassword_Cost(t *testing.T) {
	hash, err := HashPassword("whatever")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, 10, cost)
}

func TestCompareHashAndPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("secret-a")
	require.NoError(t, err)
	require.False(t, CompareHashAndPassword(hash, "secret-b"))
	require.False(t, CompareHashAndPassword("not a bcrypt hash", "secret-a"))
}
