package models

// CreateNoteRequest is the body of POST /api/notes.
// Both fields are optional text; an untitled empty note is allowed.
type CreateNoteRequest struct {
	// Title is the optional heading of the new note.
	Title string `json:"title"`

	// Content is the optional note body.
	Content string `json:"content"`
}

// ShareRequest is the body of POST /api/notes/{noteID}/share.
type ShareRequest struct {
	// Email is the address of the registered user to grant read access to.
	Email string `json:"email"`
}
