package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/utils"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listNotes").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("q")

	notes, err := h.services.NotesService.ListVisibleNotes(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	userEmail, _ := utils.GetUserEmailFromContext(ctx)

	var request models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NotesService.CreateNote(ctx, userID, userEmail, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("invalid note id")
		http.Error(w, ErrInvalidNoteID.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.NotesService.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("error deleting note")
		http.Error(w, "error deleting note", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
