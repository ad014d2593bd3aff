package auth

import (
	"testing"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestTokenService(t)
	profileID := uuid.New()

	access, refresh, err := svc.GenerateTokens(profileID, entity.RoleDonor)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, profileID, claims.ProfileID)
	assert.Equal(t, entity.RoleDonor, claims.Role)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)
	profileID := uuid.New()

	_, refresh, err := svc.GenerateTokens(profileID, entity.RoleRecipient)
	require.NoError(t, err)

	gotID, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, profileID, gotID)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc := newTestTokenService(t)
	profileID := uuid.New()

	access, refresh, err := svc.GenerateTokens(profileID, entity.RoleAdmin)
	require.NoError(t, err)

	// A refresh token must not pass access validation and vice versa.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	access, _, err := svc.GenerateTokens(uuid.New(), entity.RoleAnalyst)
	require.NoError(t, err)

	tampered := access[:len(access)-2] + "xx"
	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)
	svc.accessTTL = -time.Minute

	access, _, err := svc.GenerateTokens(uuid.New(), entity.RoleDonor)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc := newTestTokenService(t)

	hash := svc.HashToken("some-refresh-token")

	// sha256 hex digest, stable across calls.
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, svc.HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, svc.HashToken("another-token"))
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc := newTestTokenService(t)

	assert.Equal(t, refreshTokenTTL, svc.GetRefreshTokenDuration())
}
