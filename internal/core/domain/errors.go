package domain

import "errors"

// Ошибки, которые могут быть возвращены из Use Cases и хранилища.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrHasDependents = errors.New("entity has dependent records")
	ErrNotAvailable  = errors.New("need or offer is not available for a new deal")
	ErrValidation    = errors.New("validation failed")
)
