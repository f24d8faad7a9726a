package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Note is a short text record owned by a single user and optionally shared
// with other registered users.
//
// OwnerID and OwnerEmail are immutable after creation. OwnerEmail is a
// denormalized copy of the owner's address taken at creation time so the
// list view can name the sharer without a join.
//
// SharedWithIDs is the set of user ids granted read access. The set only
// grows; ids are appended atomically at the storage layer and never contain
// duplicates or the owner's own id.
type Note struct {
	// NoteID is the unique, server-generated identifier of the note.
	NoteID uuid.UUID `json:"id"`

	// OwnerID is the id of the user who created the note.
	OwnerID int64 `json:"owner_id"`

	// OwnerEmail is the owner's address captured at creation time.
	OwnerEmail string `json:"owner_email"`

	// Title is the optional heading of the note.
	Title string `json:"title"`

	// Content is the optional note body.
	Content string `json:"content"`

	// SharedWithIDs holds the ids of users the note has been shared with.
	// pq.Int64Array maps the column's BIGINT[] representation.
	SharedWithIDs pq.Int64Array `json:"shared_with_ids"`

	// CreatedAt is the creation timestamp; lists are ordered by it descending.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// IsSharedWith reports whether userID is already present in the share set.
func (n Note) IsSharedWith(userID int64) bool {
	for _, id := range n.SharedWithIDs {
		if id == userID {
			return true
		}
	}

	return false
}
