package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("")
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	issuedAt := time.Now().Add(-25 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(42)
	require.NoError(t, err)

	svc.now = time.Now

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("secret-a")
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-b")
	require.NoError(t, err)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
