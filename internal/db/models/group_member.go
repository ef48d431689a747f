package models

import "time"

// GroupMember represents the many-to-many relationship between users and groups.
// The composite primary key doubles as the uniqueness constraint that keeps a
// user from joining the same group twice.
type GroupMember struct {
	// GroupID is the ID of the group in this membership.
	GroupID uint64 `gorm:"primaryKey;column:group_id" json:"groupId"`
	// UserID is the ID of the user in this membership.
	UserID uint64 `gorm:"primaryKey;column:user_id" json:"userId"`
	// Group is the associated group (loaded via foreign key).
	// When a group is deleted, its memberships are automatically removed (CASCADE).
	Group Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
	// User is the associated user (loaded via foreign key).
	// When a user is deleted, all their memberships are automatically removed (CASCADE).
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	// CreatedAt is the timestamp when the user was added to the group (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the database table name for the GroupMember model.
func (GroupMember) TableName() string {
	return "group_members"
}
