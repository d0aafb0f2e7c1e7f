package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWT_IssueVerifyRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	email, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)
}

func TestJWT_ExpiredTokenFails(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, _, err := m.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongSecretFails(t *testing.T) {
	issuer := NewJWTManager("secret-one", time.Hour)
	verifier := NewJWTManager("secret-two", time.Hour)

	token, _, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_MalformedTokenFails(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestJWT_TamperedTokenFails(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, _, err := m.Issue("alice@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}
