package order

import "errors"

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrGroupNotFound is returned when the referenced group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrUserNotInGroup is returned when the creating user is not a member of the group.
	ErrUserNotInGroup = errors.New("user is not a member of the group")
	// ErrOrderExistsForDate is returned when the group already has an order for the date.
	ErrOrderExistsForDate = errors.New("an order already exists for this group and date")
	// ErrRestaurantNameTooLong is returned when the restaurant name exceeds MaxRestaurantNameLen.
	ErrRestaurantNameTooLong = errors.New("restaurant name exceeds 50 characters")
	// ErrEatingSelectionTooLong is returned when the eating selection exceeds MaxEatingSelectionLen.
	ErrEatingSelectionTooLong = errors.New("eating selection exceeds 100 characters")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
