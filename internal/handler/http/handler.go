package http

import (
	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/service"
)

type Handler struct {
	services *service.Services

	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
