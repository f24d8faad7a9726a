package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden indicates that the acting user is not the owner of the
	// note and therefore may not delete or share it.
	ErrForbidden = errors.New("operation allowed for note owner only")

	// ErrSelfShare indicates an attempt to share a note with its own owner.
	ErrSelfShare = errors.New("note cannot be shared with its owner")
)
