// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/mock"
	"github.com/MKhiriev/bitwise-notes/internal/store"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotesService(t *testing.T) (NotesService, *mock.MockNoteRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)

	return NewNotesService(repo, logger.Nop()), repo
}

func TestNotesService_ListVisibleNotes(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()

	notes := []models.Note{
		{NoteID: uuid.New(), OwnerID: 1, Title: "Groceries", Content: "milk"},
		{NoteID: uuid.New(), OwnerID: 2, Title: "Shared plan", Content: "trip to Kazan"},
	}
	repo.EXPECT().ListVisible(ctx, int64(1)).Return(notes, nil)

	got, err := svc.ListVisibleNotes(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNotesService_ListVisibleNotes_FiltersByQuery(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()

	notes := []models.Note{
		{NoteID: uuid.New(), Title: "Groceries", Content: "milk, bread"},
		{NoteID: uuid.New(), Title: "Trip", Content: "pack MILK-chocolate"},
		{NoteID: uuid.New(), Title: "Ideas", Content: "nothing relevant"},
	}

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"matches title", "groceries", 1},
		{"matches content case-insensitively", "milk", 2},
		{"no match", "xyz", 0},
		{"empty query returns all", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().ListVisible(ctx, int64(1)).Return(notes, nil)

			got, err := svc.ListVisibleNotes(ctx, 1, tt.query)
			require.NoError(t, err)
			assert.Len(t, got, tt.expected)
		})
	}
}

func TestNotesService_ListVisibleNotes_StorageError(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()

	repo.EXPECT().ListVisible(ctx, int64(1)).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListVisibleNotes(ctx, 1, "")
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestNotesService_CreateNote_Success(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()

	request := models.CreateNoteRequest{Title: "Groceries", Content: "milk"}

	repo.EXPECT().
		CreateNote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, note models.Note) (models.Note, error) {
			// Owner identity must be stamped by the service, not the caller.
			assert.Equal(t, int64(1), note.OwnerID)
			assert.Equal(t, "owner@example.com", note.OwnerEmail)
			assert.Equal(t, "Groceries", note.Title)
			assert.Equal(t, "milk", note.Content)

			note.NoteID = uuid.New()
			note.CreatedAt = time.Now()
			return note, nil
		})

	created, err := svc.CreateNote(ctx, 1, "owner@example.com", request)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.NoteID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestNotesService_CreateNote_EmptyTitle(t *testing.T) {
	svc, _ := newTestNotesService(t)

	_, err := svc.CreateNote(context.Background(), 1, "owner@example.com", models.CreateNoteRequest{Content: "no title"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNotesService_CreateNote_StorageError(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()

	repo.EXPECT().CreateNote(ctx, gomock.Any()).Return(models.Note{}, store.ErrNoteNotSaved)

	_, err := svc.CreateNote(ctx, 1, "owner@example.com", models.CreateNoteRequest{Title: "doomed"})
	assert.ErrorIs(t, err, store.ErrNoteNotSaved)
}

func TestNotesService_DeleteNote_Success(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()
	noteID := uuid.New()

	gomock.InOrder(
		repo.EXPECT().GetNote(ctx, noteID).Return(models.Note{NoteID: noteID, OwnerID: 1}, nil),
		repo.EXPECT().DeleteNote(ctx, noteID).Return(nil),
	)

	assert.NoError(t, svc.DeleteNote(ctx, 1, noteID))
}

func TestNotesService_DeleteNote_NotFound(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()
	noteID := uuid.New()

	repo.EXPECT().GetNote(ctx, noteID).Return(models.Note{}, store.ErrNoteNotFound)

	err := svc.DeleteNote(ctx, 1, noteID)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNotesService_DeleteNote_NotOwner(t *testing.T) {
	svc, repo := newTestNotesService(t)
	ctx := context.Background()
	noteID := uuid.New()

	// Recipient of a shared note must not be able to delete it.
	repo.EXPECT().GetNote(ctx, noteID).Return(models.Note{
		NoteID:        noteID,
		OwnerID:       1,
		SharedWithIDs: []int64{2},
	}, nil)

	err := svc.DeleteNote(ctx, 2, noteID)
	assert.ErrorIs(t, err, ErrForbidden)
}
