package store

import "errors"

// ErrNotFound is returned when a requested resource does not exist in the store.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert collides with a uniqueness
// constraint, such as creating a vehicle with a slug that is already taken.
var ErrConflict = errors.New("already exists")
