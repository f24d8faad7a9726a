package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	findUserByEmail = `SELECT user_id, email, name, created_at
    FROM users
    WHERE email = $1;`

	createNote = `INSERT INTO notes (owner_id, owner_email, title, content, shared_with_ids)
    VALUES ($1, $2, $3, $4, '{}')
    RETURNING note_id, owner_id, owner_email, title, content, shared_with_ids, created_at;`

	getNote = `SELECT note_id, owner_id, owner_email, title, content, shared_with_ids, created_at
		FROM notes
		WHERE note_id = $1;`

	deleteNote = `DELETE FROM notes
		WHERE note_id = $1;`

	// appendShare adds the target id to the share set and checks for
	// duplicates in the same statement. Running both in one UPDATE keeps
	// concurrent shares for different targets from overwriting each other.
	appendShare = `UPDATE notes
		SET shared_with_ids = array_append(shared_with_ids, $2)
		WHERE note_id = $1 AND NOT ($2 = ANY(shared_with_ids));`

	noteExists = `SELECT EXISTS(SELECT 1 FROM notes WHERE note_id = $1);`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// noteColumns is the canonical column order used by every note SELECT and
// the corresponding row Scan calls.
var noteColumns = []string{
	"note_id",
	"owner_id",
	"owner_email",
	"title",
	"content",
	"shared_with_ids",
	"created_at",
}

// buildListVisibleQuery builds the merged owned-or-shared SELECT for one
// user: `owner_id = $1 OR $1 = ANY(shared_with_ids)`, newest first.
func buildListVisibleQuery(userID int64) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From("notes").
		Where(sq.Or{
			sq.Eq{"owner_id": userID},
			sq.Expr("? = ANY(shared_with_ids)", userID),
		}).
		OrderBy("created_at DESC").
		ToSql()
}
