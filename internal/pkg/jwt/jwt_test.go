package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService("test-secret", "1h").(*JWTService)
}

func testSession() auth.Session {
	return auth.Session{
		UserID:   "7",
		Name:     "Admin",
		Email:    "admin@gym.test",
		APIToken: "upstream-token",
		TokenID:  "jti-1",
	}
}

func decodeClaims(t *testing.T, s *JWTService, token string) map[string]interface{} {
	t.Helper()
	decoded, err := s.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	return claims
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	s := newTestService()

	token, expiresAt, err := s.GenerateAccessToken(testSession())
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	sess, err := SessionFromClaims(decodeClaims(t, s, token))
	require.NoError(t, err)
	assert.Equal(t, "7", sess.UserID)
	assert.Equal(t, "Admin", sess.Name)
	assert.Equal(t, "upstream-token", sess.APIToken)
	assert.Equal(t, "jti-1", sess.TokenID)
	assert.Equal(t, expiresAt, sess.ExpiresAt.Unix())
	assert.True(t, sess.APITokenExpiresAt.IsZero())
}

func TestGenerateAccessToken_CappedByUpstreamExpiry(t *testing.T) {
	s := newTestService()
	sess := testSession()
	sess.APITokenExpiresAt = time.Now().Add(10 * time.Minute).Truncate(time.Second)

	token, expiresAt, err := s.GenerateAccessToken(sess)
	require.NoError(t, err)
	assert.Equal(t, sess.APITokenExpiresAt.Unix(), expiresAt)

	got, err := SessionFromClaims(decodeClaims(t, s, token))
	require.NoError(t, err)
	assert.Equal(t, sess.APITokenExpiresAt.Unix(), got.APITokenExpiresAt.Unix())
}

func TestGenerateAccessToken_RequiresTokenID(t *testing.T) {
	s := newTestService()
	sess := testSession()
	sess.TokenID = ""

	_, _, err := s.GenerateAccessToken(sess)
	assert.Error(t, err)
}

func TestSessionFromClaims_RejectsOtherTokenTypes(t *testing.T) {
	_, err := SessionFromClaims(map[string]interface{}{
		"type":      TokenTypeSSE,
		"user_id":   "7",
		"api_token": "x",
		"jti":       "j",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = SessionFromClaims(map[string]interface{}{"type": TokenTypeAccess, "user_id": "7"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestSSEToken(t *testing.T) {
	s := newTestService()

	token, expiresIn, err := s.GenerateSSEToken("7")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := s.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", userID)

	access, _, err := s.GenerateAccessToken(testSession())
	require.NoError(t, err)
	_, err = s.ValidateSSEToken(access)
	assert.Error(t, err)
}

func TestRevocation(t *testing.T) {
	s := newTestService()
	now := time.Now()

	s.RevokeToken("expired", now.Add(-time.Minute).Unix())
	s.RevokeToken("live", now.Add(time.Hour).Unix())

	assert.True(t, s.IsTokenRevoked("expired"))
	assert.True(t, s.IsTokenRevoked("live"))
	assert.False(t, s.IsTokenRevoked("other"))

	assert.Equal(t, 1, s.PurgeRevoked(now))
	assert.False(t, s.IsTokenRevoked("expired"))
	assert.True(t, s.IsTokenRevoked("live"))
}
