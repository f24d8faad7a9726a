package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user in the directory has the
	// requested email address. Sharing with an address that has not signed
	// up is an expected, recoverable condition, not a system fault.
	ErrUserNotFound = errors.New("no user was found for the given email")

	// ErrNoteNotFound is returned when a query or mutation targets a note id
	// that does not exist in the database.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrAlreadyShared is returned by AppendShare when the target user id is
	// already a member of the note's share set. The share set is unchanged.
	ErrAlreadyShared = errors.New("note is already shared with this user")

	// ErrNoteNotSaved is returned when an INSERT completes without error but
	// the returned row cannot be produced, indicating that no data was
	// actually persisted.
	ErrNoteNotSaved = errors.New("note was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan note rows")
)
