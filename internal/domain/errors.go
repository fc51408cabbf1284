package domain

import "errors"

// Error taxonomy shared across services and handlers. Services wrap these with
// fmt.Errorf("%w: ...") so handlers can map them to HTTP statuses with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
