package repository

import "errors"

// ErrNotFound indicates an entity was not located.
var ErrNotFound = errors.New("repository: not found")

// ErrConflict indicates an insert would duplicate a unique value.
var ErrConflict = errors.New("repository: conflict")
