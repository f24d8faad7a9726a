package models

// ShareNotification is the payload dispatched to the external notification
// sender after a note has been shared. Delivery is best-effort: the share
// itself has already been persisted by the time this value is produced.
type ShareNotification struct {
	// RecipientEmail is the address of the user the note was shared with.
	RecipientEmail string `json:"recipientEmail"`

	// NoteTitle is the title of the shared note, used in the message subject.
	NoteTitle string `json:"noteTitle"`

	// FromDisplayName names the sharing owner in the message body.
	FromDisplayName string `json:"fromDisplayName"`
}
