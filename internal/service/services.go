package service

import (
	"github.com/MKhiriev/bitwise-notes/internal/config"
	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/store"
)

type Services struct {
	AuthService     AuthService
	IdentityService IdentityService
	NotesService    NotesService
	SharingService  SharingService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, dispatcher NotificationDispatcher, logger *logger.Logger) *Services {
	identityService := NewIdentityService(storages.UserDirectory, logger)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		IdentityService: identityService,
		NotesService:    NewNotesService(storages.NoteRepository, logger),
		SharingService:  NewSharingService(storages.NoteRepository, identityService, dispatcher, logger),
	}
}
