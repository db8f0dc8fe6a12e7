package domain

import "errors"

// ErrNotFound is returned when an identity-based lookup (phone number) finds
// no matching record in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a value constraint
// (e.g. a tag name longer than 20 characters).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when a phone number that must be unique across
// live records appears more than once.
var ErrDuplicate = errors.New("duplicate record")

// ErrNoChange is returned when a tag removal request matched none of the
// record's existing tags. The store is left untouched.
var ErrNoChange = errors.New("no matching tags")

// ErrPermission is returned when the filesystem denies creating the snapshot
// directory or writing a snapshot file.
var ErrPermission = errors.New("permission denied")

// ErrIO is returned for every snapshot write failure that is not a
// permission failure: disk full, invalid path, existing file, short write.
var ErrIO = errors.New("i/o error")
