package store

import (
	"context"

	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserDirectory is the read-only lookup interface over the user directory
// maintained by the external identity provider. Emails are stored lowercase;
// callers are expected to normalize input before lookup.
type UserDirectory interface {
	// FindUserByEmail returns the user whose email exactly matches the given
	// (already normalized) address, or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository is the persistence boundary for notes. It is deliberately
// thin and non-authorizing: owner checks are enforced by the service layer
// through the policy package before any mutating call reaches it.
type NoteRepository interface {
	// ListVisible returns every note the user owns or has been granted access
	// to, ordered by creation time descending.
	ListVisible(ctx context.Context, userID int64) ([]models.Note, error)

	// CreateNote inserts a new note with an empty share set and returns the
	// persisted record with server-assigned NoteID and CreatedAt.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote returns the note with the given id or ErrNoteNotFound.
	GetNote(ctx context.Context, noteID uuid.UUID) (models.Note, error)

	// DeleteNote removes the note unconditionally. Returns ErrNoteNotFound
	// when no row was deleted.
	DeleteNote(ctx context.Context, noteID uuid.UUID) error

	// AppendShare atomically appends targetUserID to the note's share set.
	// The append and the duplicate check happen in a single statement so two
	// concurrent shares with different targets both survive. Returns
	// ErrAlreadyShared when the id is already present and ErrNoteNotFound
	// when the note does not exist.
	AppendShare(ctx context.Context, noteID uuid.UUID, targetUserID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
