package apperrors

import "errors"

// Sentinel errors for expected, locally-recoverable outcomes. Repositories
// translate store-level failures (gorm record-not-found, MySQL duplicate
// entry) into these; controllers map them to HTTP status codes. Anything
// else is a store failure and passes through unchanged.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("already exists")
	ErrSelfReference = errors.New("cannot reference self")
	ErrValidation    = errors.New("invalid input")
)
