package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/mock"
	"github.com/MKhiriev/bitwise-notes/internal/store"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIdentityService(t *testing.T) (IdentityService, *mock.MockUserDirectory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	directory := mock.NewMockUserDirectory(ctrl)

	return NewIdentityService(directory, logger.Nop()), directory
}

func TestIdentityService_Resolve_Success(t *testing.T) {
	svc, directory := newTestIdentityService(t)
	ctx := context.Background()

	expected := models.User{UserID: 7, Email: "friend@example.com", Name: "Friend"}
	directory.EXPECT().FindUserByEmail(ctx, "friend@example.com").Return(expected, nil)

	user, err := svc.Resolve(ctx, "friend@example.com")
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestIdentityService_Resolve_NormalizesEmail(t *testing.T) {
	svc, directory := newTestIdentityService(t)
	ctx := context.Background()

	// The lookup must always receive the trimmed, lowercased address.
	directory.EXPECT().
		FindUserByEmail(ctx, "friend@example.com").
		Return(models.User{UserID: 7, Email: "friend@example.com"}, nil)

	user, err := svc.Resolve(ctx, "  Friend@Example.COM  ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestIdentityService_Resolve_EmptyEmail(t *testing.T) {
	svc, _ := newTestIdentityService(t)

	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestIdentityService_Resolve_NotFound(t *testing.T) {
	svc, directory := newTestIdentityService(t)
	ctx := context.Background()

	directory.EXPECT().
		FindUserByEmail(ctx, "stranger@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Resolve(ctx, "stranger@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
