package models

import "time"

// User represents a registered account in the user directory.
// Accounts are created and owned by the external identity provider;
// this application only looks them up and never mutates them.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique address of the user.
	// Stored in lowercase; used for identity resolution when sharing notes.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DisplayName returns the user's name when set, falling back to the email
// address. Used when composing share notifications.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}
