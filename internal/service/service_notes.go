// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/policy"
	"github.com/MKhiriev/bitwise-notes/internal/store"
	"github.com/MKhiriev/bitwise-notes/internal/validators"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/google/uuid"
)

// notesService is the concrete implementation of NotesService.
type notesService struct {
	noteRepository store.NoteRepository

	validator validators.Validator

	logger *logger.Logger
}

// NewNotesService constructs a NotesService wired to the given NoteRepository.
func NewNotesService(noteRepository store.NoteRepository, logger *logger.Logger) NotesService {
	return &notesService{
		noteRepository: noteRepository,
		validator:      validators.NewNoteValidator(),
		logger:         logger,
	}
}

// ListVisibleNotes returns every note the user owns or was granted access to,
// ordered newest first. A non-empty query narrows the result to notes whose
// title or content contains the query, case-insensitively.
func (s *notesService) ListVisibleNotes(ctx context.Context, userID int64, query string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListVisible(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("listing visible notes failed")
		return nil, fmt.Errorf("listing visible notes failed: %w", err)
	}

	return filterNotes(notes, query), nil
}

// CreateNote persists a new note owned by the given user.
//
// Returns the persisted note (with server-assigned ID and timestamp) or:
//   - ErrInvalidDataProvided (wrapped) if the title is empty.
//   - A wrapped storage error if persistence fails.
func (s *notesService) CreateNote(ctx context.Context, userID int64, ownerEmail string, request models.CreateNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("userID", userID).Msg("invalid note data provided")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note := models.Note{
		OwnerID:    userID,
		OwnerEmail: ownerEmail,
		Title:      request.Title,
		Content:    request.Content,
	}

	createdNote, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// DeleteNote removes a note. Only the owner may delete.
//
// Returns nil on success or:
//   - store.ErrNoteNotFound (wrapped) if no such note exists.
//   - ErrForbidden if the acting user is not the owner.
func (s *notesService) DeleteNote(ctx context.Context, userID int64, noteID uuid.UUID) error {
	log := logger.FromContext(ctx)

	note, err := s.noteRepository.GetNote(ctx, noteID)
	if err != nil {
		log.Err(err).Str("noteID", noteID.String()).Msg("note lookup before deletion failed")
		return fmt.Errorf("note lookup before deletion failed: %w", err)
	}

	if !policy.CanDelete(userID, note) {
		log.Error().
			Int64("userID", userID).
			Int64("ownerID", note.OwnerID).
			Str("noteID", noteID.String()).
			Msg("deletion denied: not the owner")
		return ErrForbidden
	}

	if err := s.noteRepository.DeleteNote(ctx, noteID); err != nil {
		log.Err(err).Str("noteID", noteID.String()).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// filterNotes returns the notes whose title or content contains the query,
// case-insensitively. An empty query returns the input unchanged.
func filterNotes(notes []models.Note, query string) []models.Note {
	if query == "" {
		return notes
	}

	needle := strings.ToLower(query)
	filtered := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), needle) ||
			strings.Contains(strings.ToLower(note.Content), needle) {
			filtered = append(filtered, note)
		}
	}

	return filtered
}
