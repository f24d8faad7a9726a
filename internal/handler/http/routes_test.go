package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/service"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/stretchr/testify/assert"
)

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	h := NewHandler(&service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				t.Fatal("ParseToken should not be called without an Authorization header")
				return models.Token{}, nil
			},
		},
	}, "1.0.0", logger.Nop())
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodDelete, "/api/notes/00000000-0000-0000-0000-000000000001"},
		{http.MethodPost, "/api/notes/00000000-0000-0000-0000-000000000001/share"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_VersionRouteIsPublic(t *testing.T) {
	h := NewHandler(&service.Services{}, "2.0.0", logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h := NewHandler(&service.Services{}, "1.0.0", logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_PropagatesIncomingTraceID(t *testing.T) {
	h := NewHandler(&service.Services{}, "1.0.0", logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}
