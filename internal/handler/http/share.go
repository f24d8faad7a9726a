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

func (h *Handler) shareNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.shareNote").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.shareNote").Msg("invalid note id")
		http.Error(w, ErrInvalidNoteID.Error(), http.StatusBadRequest)
		return
	}

	var request models.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.shareNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.SharingService.ShareNote(ctx, userID, noteID, request.Email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.shareNote").Msg("error sharing note")
		http.Error(w, "error sharing note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}
