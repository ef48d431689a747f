package models

import "time"

// GroupType classifies how long a group stays valid after creation.
type GroupType string

const (
	// GroupTypeOneDay marks a group that expires one day after creation.
	GroupTypeOneDay GroupType = "one_day"
	// GroupTypeWeekly marks a group for a recurring weekly food order.
	GroupTypeWeekly GroupType = "weekly"
	// GroupTypePermanent marks a group without any expiry.
	GroupTypePermanent GroupType = "permanent"
)

// Group is a collection of users sharing recurring food orders.
// A group is "active" while ValidUntil is unset or in the future.
// Group ids are application-assigned 10-digit random numbers, not
// auto-increment values.
type Group struct {
	// GroupID is the unique identifier for the group.
	GroupID uint64 `gorm:"primaryKey;autoIncrement:false;column:group_id" json:"groupId"`
	// GroupName is the display name of the group.
	GroupName string `gorm:"size:70;not null" json:"groupName"`
	// GroupType decides whether ValidUntil is set at creation.
	GroupType GroupType `gorm:"type:varchar(20);not null" json:"groupType"`
	// EndOfOrderTime is the daily deadline after which no more orders are taken.
	EndOfOrderTime time.Time `json:"endOfOrderTime"`
	// ValidUntil is set to Created + one day for one_day groups, nil otherwise.
	// It is never recomputed on update.
	ValidUntil *time.Time `json:"validUntil"`
	// Created is the timestamp the group was created.
	Created time.Time `json:"created"`

	// Users holds the group members when a query loads them explicitly.
	Users []User `gorm:"-" json:"users,omitempty"`
	// Orders holds the group's orders when a query loads them explicitly.
	Orders []Order `gorm:"-" json:"orders,omitempty"`
}

// TableName specifies the database table name for the Group model.
func (Group) TableName() string {
	return "groups"
}
