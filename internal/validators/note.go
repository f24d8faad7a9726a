package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/bitwise-notes/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldEmail targets the recipient e-mail of a share request.
	FieldEmail = "email"
)

// maxTitleLength bounds the note title; matches the column constraint.
const maxTitleLength = 255

// NoteValidator implements the Validator interface for the note-related
// request models: CreateNoteRequest and ShareRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of value.
//
// Returns ErrUnsupportedType for any type it does not know how to validate.
func (v *NoteValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch data := value.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateNoteRequest(data, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateNoteRequest(*data, fields...)
	case models.ShareRequest:
		return v.validateShareRequest(data, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(*data, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *NoteValidator) validateCreateNoteRequest(request models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			title := strings.TrimSpace(request.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if len(title) > maxTitleLength {
				return ErrTitleTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *NoteValidator) validateShareRequest(request models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			email := strings.TrimSpace(request.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(email); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
