// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/google/uuid"
)

// AuthService verifies inbound authentication tokens issued by the
// identity provider.
type AuthService interface {
	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// IdentityService resolves user identities from external identifiers.
type IdentityService interface {
	// Resolve finds the registered user behind the given e-mail address.
	// The address is normalized (trimmed, lowercased) before lookup.
	Resolve(ctx context.Context, email string) (models.User, error)
}

// NotesService manages the note lifecycle for authenticated users.
type NotesService interface {
	// ListVisibleNotes returns every note the user owns or has been granted
	// access to, newest first. A non-empty query narrows the result to notes
	// whose title or content contains the query, case-insensitively.
	ListVisibleNotes(ctx context.Context, userID int64, query string) ([]models.Note, error)

	// CreateNote persists a new note owned by the given user.
	CreateNote(ctx context.Context, userID int64, ownerEmail string, request models.CreateNoteRequest) (models.Note, error)

	// DeleteNote removes a note. Only the owner may delete.
	DeleteNote(ctx context.Context, userID int64, noteID uuid.UUID) error
}

// SharingService grants note access to other registered users.
type SharingService interface {
	// ShareNote grants the user behind recipientEmail read access to the
	// note. Only the owner may share. Returns the updated note.
	ShareNote(ctx context.Context, actorID int64, noteID uuid.UUID, recipientEmail string) (models.Note, error)
}

// NotificationDispatcher hands share notifications over for asynchronous,
// best-effort delivery. Dispatch must never block the caller.
type NotificationDispatcher interface {
	// Dispatch enqueues a notification for delivery. Returns false when the
	// notification was dropped (for example, a full queue).
	Dispatch(notification models.ShareNotification) bool
}
