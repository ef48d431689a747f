package userorder

import "errors"

var (
	// ErrUserOrderNotFound is returned when no line item matches the
	// (user, order, line item) triple.
	ErrUserOrderNotFound = errors.New("user order not found")
	// ErrGroupNotFound is returned when the referenced group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrOrderNotFound is returned when the parent order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUserNotInGroup is returned when the user is not a member of the group.
	ErrUserNotInGroup = errors.New("user is not a member of the group")
	// ErrProductNameTooLong is returned when the product name exceeds MaxProductNameLen.
	ErrProductNameTooLong = errors.New("product name exceeds 100 characters")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
