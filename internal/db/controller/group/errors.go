package group

import "errors"

var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrUserNotFound is returned when a referenced user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrOrderNotFound is returned when a referenced order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNoGroupsExist is returned when no groups exist at all.
	ErrNoGroupsExist = errors.New("no groups exist")
	// ErrGroupNameTooLong is returned when a group name exceeds MaxGroupNameLen.
	ErrGroupNameTooLong = errors.New("group name exceeds 70 characters")
	// ErrUserAlreadyInGroup is returned when adding a user that is already a member.
	ErrUserAlreadyInGroup = errors.New("user is already a member of the group")
	// ErrUserNotInGroup is returned when removing a membership that does not exist.
	ErrUserNotInGroup = errors.New("user is not a member of the group")
	// ErrIDSpaceExhausted is returned when no free group id could be drawn.
	ErrIDSpaceExhausted = errors.New("could not generate an unused group id")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
