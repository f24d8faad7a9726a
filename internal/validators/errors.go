package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle   = errors.New("title is required")
	ErrTitleTooLong = errors.New("title exceeds maximum length")
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidEmail = errors.New("invalid email address")
)
