package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/bitwise-notes/internal/config"
	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "bitwise-idp"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.App{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}, logger.Nop())
}

func TestAuthService_ParseToken_Success(t *testing.T) {
	svc := newTestAuthService()

	issued, err := utils.GenerateJWTToken(testIssuer, 42, "user@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	token, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)

	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "user@example.com", token.Email)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	svc := newTestAuthService()

	issued, err := utils.GenerateJWTToken(testIssuer, 42, "user@example.com", time.Hour, "different-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	svc := newTestAuthService()

	issued, err := utils.GenerateJWTToken("someone-else", 42, "user@example.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService()

	issued, err := utils.GenerateJWTToken(testIssuer, 42, "user@example.com", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
