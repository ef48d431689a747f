package user

import "errors"

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoUsersExist is returned when no users exist at all.
	ErrNoUsersExist = errors.New("no users exist")
	// ErrNameRequired is returned when a first or last name is empty.
	ErrNameRequired = errors.New("first and last name are required")
	// ErrNameTooLong is returned when a first or last name exceeds MaxNameLen.
	ErrNameTooLong = errors.New("first or last name exceeds 25 characters")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
