package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/store"
	"github.com/MKhiriev/bitwise-notes/models"
)

// identityService resolves e-mail addresses to registered users.
type identityService struct {
	userDirectory store.UserDirectory

	logger *logger.Logger
}

func NewIdentityService(userDirectory store.UserDirectory, logger *logger.Logger) IdentityService {
	return &identityService{
		userDirectory: userDirectory,
		logger:        logger,
	}
}

// Resolve finds the registered user behind the given e-mail address.
//
// The address is trimmed and lowercased before lookup so that resolution is
// case-insensitive regardless of how the caller spelled it. The directory
// stores addresses lowercased, which makes the normalized lookup exact.
//
// Returns the user record or:
//   - ErrInvalidDataProvided if the address is empty after trimming.
//   - store.ErrUserNotFound (wrapped) if no user has this address.
func (s *identityService) Resolve(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		log.Error().Msg("empty email provided for identity resolution")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userDirectory.FindUserByEmail(ctx, normalized)
	if err != nil {
		log.Err(err).Str("email", normalized).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}
