// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/policy"
	"github.com/MKhiriev/bitwise-notes/internal/store"
	"github.com/MKhiriev/bitwise-notes/internal/validators"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/google/uuid"
)

// sharingService is the concrete implementation of SharingService.
//
// Sharing is an owner-only grant: it resolves the recipient by e-mail,
// appends their ID to the note's access list, and hands a notification over
// for asynchronous delivery. Notification delivery is best-effort and never
// affects the outcome of the share itself.
type sharingService struct {
	noteRepository store.NoteRepository

	identityService IdentityService

	dispatcher NotificationDispatcher

	validator validators.Validator

	logger *logger.Logger
}

// NewSharingService constructs a SharingService. The dispatcher may be nil,
// in which case no notifications are sent.
func NewSharingService(noteRepository store.NoteRepository, identityService IdentityService, dispatcher NotificationDispatcher, logger *logger.Logger) SharingService {
	return &sharingService{
		noteRepository:  noteRepository,
		identityService: identityService,
		dispatcher:      dispatcher,
		validator:       validators.NewNoteValidator(),
		logger:          logger,
	}
}

// ShareNote grants the user behind recipientEmail read access to the note.
//
// The grant is recorded with a single guarded statement, so two concurrent
// shares of the same note to different recipients both land and the same
// recipient is never recorded twice.
//
// Returns the updated note on success or:
//   - ErrInvalidDataProvided (wrapped) if the e-mail is malformed.
//   - store.ErrNoteNotFound (wrapped) if no such note exists.
//   - ErrForbidden if the acting user is not the owner.
//   - store.ErrUserNotFound (wrapped) if the e-mail matches no registered user.
//   - ErrSelfShare if the recipient is the note's owner.
//   - store.ErrAlreadyShared (wrapped) if the recipient already has access.
func (s *sharingService) ShareNote(ctx context.Context, actorID int64, noteID uuid.UUID, recipientEmail string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.ShareRequest{Email: recipientEmail}); err != nil {
		log.Err(err).Str("noteID", noteID.String()).Msg("invalid share request")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note, err := s.noteRepository.GetNote(ctx, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID.String()).Msg("note lookup before sharing failed")
		return models.Note{}, fmt.Errorf("note lookup before sharing failed: %w", err)
	}

	if !policy.CanShare(actorID, note) {
		log.Error().
			Int64("userID", actorID).
			Int64("ownerID", note.OwnerID).
			Str("noteID", noteID.String()).
			Msg("sharing denied: not the owner")
		return models.Note{}, ErrForbidden
	}

	recipient, err := s.identityService.Resolve(ctx, recipientEmail)
	if err != nil {
		log.Err(err).Str("noteID", noteID.String()).Msg("recipient resolution failed")
		return models.Note{}, fmt.Errorf("recipient resolution failed: %w", err)
	}

	if recipient.UserID == note.OwnerID {
		log.Error().Str("noteID", noteID.String()).Msg("attempt to share a note with its owner")
		return models.Note{}, ErrSelfShare
	}

	if note.IsSharedWith(recipient.UserID) {
		return models.Note{}, fmt.Errorf("note is already shared with this user: %w", store.ErrAlreadyShared)
	}

	if err := s.noteRepository.AppendShare(ctx, noteID, recipient.UserID); err != nil {
		log.Err(err).
			Str("noteID", noteID.String()).
			Int64("recipientID", recipient.UserID).
			Msg("recording share ended with error")
		return models.Note{}, fmt.Errorf("recording share ended with error: %w", err)
	}

	updatedNote, err := s.noteRepository.GetNote(ctx, noteID)
	if err != nil {
		// The grant itself is already recorded; surface the refetch failure.
		log.Err(err).Str("noteID", noteID.String()).Msg("note refetch after sharing failed")
		return models.Note{}, fmt.Errorf("note refetch after sharing failed: %w", err)
	}

	s.notifyRecipient(ctx, updatedNote, recipient)

	return updatedNote, nil
}

// notifyRecipient hands a share notification over for asynchronous delivery.
// Delivery failures and drops are logged and never surfaced to the caller.
func (s *sharingService) notifyRecipient(ctx context.Context, note models.Note, recipient models.User) {
	if s.dispatcher == nil {
		return
	}

	log := logger.FromContext(ctx)

	fromDisplayName := note.OwnerEmail
	if owner, err := s.identityService.Resolve(ctx, note.OwnerEmail); err == nil {
		fromDisplayName = owner.DisplayName()
	}

	notification := models.ShareNotification{
		RecipientEmail:  recipient.Email,
		NoteTitle:       note.Title,
		FromDisplayName: fromDisplayName,
	}

	if !s.dispatcher.Dispatch(notification) {
		log.Error().
			Str("noteID", note.NoteID.String()).
			Str("recipientEmail", recipient.Email).
			Msg("share notification dropped")
	}
}
