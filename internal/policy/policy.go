// Package policy contains the access decisions for notes as pure,
// side-effect-free predicates.
//
// The predicates are enforced at the service layer in front of every
// mutating store call; transport code and clients are never trusted to
// pre-filter actions. Keeping them free of I/O makes the authorization
// rules independently testable without a live store.
package policy

import "github.com/MKhiriev/bitwise-notes/models"

// CanDelete reports whether actorID may delete the note.
// Only the owner may delete.
func CanDelete(actorID int64, note models.Note) bool {
	return actorID == note.OwnerID
}

// CanShare reports whether actorID may extend the note's share set.
// Only the owner may share.
func CanShare(actorID int64, note models.Note) bool {
	return actorID == note.OwnerID
}

// IsVisible reports whether userID may see the note: the user either owns
// it or is a member of its share set.
func IsVisible(userID int64, note models.Note) bool {
	return userID == note.OwnerID || note.IsSharedWith(userID)
}
