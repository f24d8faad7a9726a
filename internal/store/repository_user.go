package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/models"
)

// userDirectory is the PostgreSQL-backed implementation of [UserDirectory].
// It performs read-only lookups against the "users" table, which is owned
// and populated by the external identity provider.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userDirectory struct {
	logger *logger.Logger
	db     *DB
}

// NewUserDirectory constructs a [UserDirectory] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserDirectory(db *DB, logger *logger.Logger) UserDirectory {
	logger.Debug().Msg("creating user directory")
	return &userDirectory{
		db:     db,
		logger: logger,
	}
}

// FindUserByEmail retrieves the user whose email column exactly matches the
// given address.
//
// The directory stores emails lowercase (enforced by a CHECK constraint in
// the migration), so equality here is effectively case-insensitive as long
// as callers normalize their input — the identity resolver does.
//
// Error handling:
//   - sql.ErrNoRows → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (d *userDirectory) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := d.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userDirectory.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&user.UserID, &user.Email, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userDirectory.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
