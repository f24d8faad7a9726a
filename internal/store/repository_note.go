package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/models"
	"github.com/google/uuid"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD and share-append operations against the "notes"
// table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, note_id, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListVisible returns every note the user owns or is a share-set member of,
// ordered by creation time descending. Returns an empty slice when the user
// has no visible notes.
func (r *noteRepository) ListVisible(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVisibleQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListVisible").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListVisible").
			Int64("user_id", userID).
			Msg("failed to execute query for getting visible notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 20)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.NoteID,
			&note.OwnerID,
			&note.OwnerEmail,
			&note.Title,
			&note.Content,
			&note.SharedWithIDs,
			&note.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListVisible").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListVisible").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// CreateNote persists a new note with an empty share set and returns the
// fully populated [models.Note] with server-assigned fields (NoteID,
// CreatedAt).
//
// The INSERT uses the [createNote] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created record.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createNote, note.OwnerID, note.OwnerEmail, note.Title, note.Content)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("owner_id", note.OwnerID).
			Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var saved models.Note
	if err := row.Scan(
		&saved.NoteID,
		&saved.OwnerID,
		&saved.OwnerEmail,
		&saved.Title,
		&saved.Content,
		&saved.SharedWithIDs,
		&saved.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("owner_id", note.OwnerID).
			Msg("error scanning created note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrNoteNotSaved, err)
	}

	return saved, nil
}

// GetNote retrieves a single note by id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery] or [ErrScanningRow].
func (r *noteRepository) GetNote(ctx context.Context, noteID uuid.UUID) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.DB.QueryRowContext(ctx, getNote, noteID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID.String()).
			Msg("error querying note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err := row.Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.OwnerEmail,
		&note.Title,
		&note.Content,
		&note.SharedWithIDs,
		&note.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID.String()).
			Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// DeleteNote removes the note unconditionally. Owner-only authorization is
// the caller's responsibility; the repository is a thin persistence boundary.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID.String()).
			Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// AppendShare atomically appends targetUserID to the note's share set.
//
// The duplicate guard lives inside the UPDATE itself
// (`AND NOT ($2 = ANY(shared_with_ids))`), so the read-modify-write happens
// in a single statement and concurrent shares for different targets both
// survive. A zero-row result is disambiguated by a follow-up existence
// check: the note is either missing ([ErrNoteNotFound]) or the target is
// already a member ([ErrAlreadyShared]).
//
// Transient failures (connection loss, deadlock rollback) are retried once
// based on the [ErrorClassificator] verdict.
func (r *noteRepository) AppendShare(ctx context.Context, noteID uuid.UUID, targetUserID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, appendShare, noteID, targetUserID)
	if err != nil && r.errorClassificator.Classify(err) == Retryable {
		log.Warn().
			Str("func", "noteRepository.AppendShare").
			Str("note_id", noteID.String()).
			Str("pg_code", postgresError(err)).
			Msg("retrying share append after transient failure")
		result, err = r.DB.ExecContext(ctx, appendShare, noteID, targetUserID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.AppendShare").
			Str("note_id", noteID.String()).
			Int64("target_user_id", targetUserID).
			Msg("error appending to share set")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing was updated: either the note is gone or the id is a duplicate.
	var exists bool
	if err := r.DB.QueryRowContext(ctx, noteExists, noteID).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "noteRepository.AppendShare").
			Str("note_id", noteID.String()).
			Msg("error checking note existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !exists {
		return ErrNoteNotFound
	}

	return ErrAlreadyShared
}
