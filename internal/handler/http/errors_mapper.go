package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bitwise-notes/internal/service"
	"github.com/MKhiriev/bitwise-notes/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrSelfShare:               http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,

	store.ErrNoteNotFound:  http.StatusNotFound,
	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrAlreadyShared: http.StatusConflict,
	store.ErrNoteNotSaved:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
