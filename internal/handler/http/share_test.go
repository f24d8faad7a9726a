package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/service"
	"github.com/MKhiriev/bitwise-notes/internal/store"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSharingService implements service.SharingService via a function field.
type mockSharingService struct {
	shareFn func(ctx context.Context, actorID int64, noteID uuid.UUID, recipientEmail string) (models.Note, error)
}

func (m *mockSharingService) ShareNote(ctx context.Context, actorID int64, noteID uuid.UUID, recipientEmail string) (models.Note, error) {
	return m.shareFn(ctx, actorID, noteID, recipientEmail)
}

func newHandlerWithSharingService(sharingSvc service.SharingService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			SharingService: sharingSvc,
		},
	}
}

func shareRequest(t *testing.T, h *Handler, noteID string, userID int64, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/notes/"+noteID+"/share", bytes.NewReader(body))
	req = authenticate(req, userID, "owner@example.com")
	rec := httptest.NewRecorder()

	newTestRouter(h).ServeHTTP(rec, req)
	return rec
}

func shareBody(t *testing.T, email string) []byte {
	t.Helper()
	body, err := json.Marshal(models.ShareRequest{Email: email})
	require.NoError(t, err)
	return body
}

func TestShareNote_Success(t *testing.T) {
	noteID := uuid.New()

	h := newHandlerWithSharingService(&mockSharingService{
		shareFn: func(_ context.Context, actorID int64, id uuid.UUID, recipientEmail string) (models.Note, error) {
			assert.Equal(t, int64(1), actorID)
			assert.Equal(t, noteID, id)
			assert.Equal(t, "friend@example.com", recipientEmail)
			return models.Note{
				NoteID:        noteID,
				OwnerID:       actorID,
				Title:         "Groceries",
				SharedWithIDs: []int64{2},
			}, nil
		},
	})

	rec := shareRequest(t, h, noteID.String(), 1, shareBody(t, "friend@example.com"))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []int64{2}, []int64(got.SharedWithIDs))
}

func TestShareNote_InvalidUUID(t *testing.T) {
	h := newHandlerWithSharingService(&mockSharingService{
		shareFn: func(_ context.Context, _ int64, _ uuid.UUID, _ string) (models.Note, error) {
			t.Fatal("ShareNote should not be called")
			return models.Note{}, nil
		},
	})

	rec := shareRequest(t, h, "not-a-uuid", 1, shareBody(t, "friend@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShareNote_InvalidJSON(t *testing.T) {
	h := newHandlerWithSharingService(&mockSharingService{})

	rec := shareRequest(t, h, uuid.NewString(), 1, []byte("{broken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShareNote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"note not found", store.ErrNoteNotFound, http.StatusNotFound},
		{"recipient not registered", store.ErrUserNotFound, http.StatusNotFound},
		{"not the owner", service.ErrForbidden, http.StatusForbidden},
		{"already shared", store.ErrAlreadyShared, http.StatusConflict},
		{"self share", service.ErrSelfShare, http.StatusBadRequest},
		{"malformed email", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"storage failure", store.ErrExecutingStatement, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithSharingService(&mockSharingService{
				shareFn: func(_ context.Context, _ int64, _ uuid.UUID, _ string) (models.Note, error) {
					return models.Note{}, tt.serviceErr
				},
			})

			rec := shareRequest(t, h, uuid.NewString(), 1, shareBody(t, "friend@example.com"))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
