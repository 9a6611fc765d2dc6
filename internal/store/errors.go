package store

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a uniqueness constraint (admin email or
// username) would be violated.
var ErrDuplicate = errors.New("already exists")
