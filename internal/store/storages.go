package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bitwise-notes/internal/config"
	"github.com/MKhiriev/bitwise-notes/internal/logger"
)

// Storages aggregates every repository the application uses. It is built
// once at startup and handed to the service layer.
type Storages struct {
	UserDirectory  UserDirectory
	NoteRepository NoteRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories on top of the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserDirectory:  NewUserDirectory(db, log),
		NoteRepository: NewNoteRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
