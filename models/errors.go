package models

import "errors"

// Error kinds returned by the service layer. Controllers map them to an HTTP
// status plus an opaque flash-message key; nothing below ever carries
// user-facing prose.
var (
	ErrNotFound         = errors.New("record not found or not owned")
	ErrForbidden        = errors.New("admin rights required")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrSelfModification = errors.New("admins cannot modify their own account")
)
