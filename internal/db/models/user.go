package models

// User is a person placing food orders. Users can belong to any number
// of groups via GroupMember rows.
type User struct {
	// UserID is the unique identifier for the user.
	UserID uint64 `gorm:"primaryKey;column:user_id" json:"userId"`
	// FirstName is the user's given name.
	FirstName string `gorm:"size:25;not null" json:"firstName"`
	// LastName is the user's family name.
	LastName string `gorm:"size:25;not null" json:"lastName"`

	// Groups holds the user's groups when a query loads them explicitly.
	Groups []Group `gorm:"-" json:"groups,omitempty"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}
