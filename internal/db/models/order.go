package models

import "time"

// Order is one restaurant order of a group for a calendar date.
// The composite unique index on (group_id, order_date) enforces the
// one-order-per-group-per-date rule at the storage layer, so concurrent
// creates cannot both slip past the application-level existence check.
type Order struct {
	// OrderID is the unique identifier for the order.
	OrderID uint64 `gorm:"primaryKey;column:order_id" json:"orderId"`
	// GroupID is the ID of the group this order belongs to.
	GroupID uint64 `gorm:"not null;column:group_id;uniqueIndex:idx_group_order_date" json:"groupId"`
	// OrderDate is the calendar date the order is placed for.
	OrderDate *time.Time `gorm:"uniqueIndex:idx_group_order_date" json:"orderDate"`
	// EatingSelection describes the shared food selection.
	EatingSelection string `gorm:"size:100" json:"eatingSelection"`
	// RestaurantName is the restaurant the group orders from.
	RestaurantName string `gorm:"size:50" json:"restaurantName"`
	// Group is the owning group (loaded via foreign key).
	// When a group is deleted, its orders are automatically removed (CASCADE).
	Group Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`

	// UserOrders holds the order's line items when a query loads them explicitly.
	UserOrders []UserOrder `gorm:"-" json:"userOrders,omitempty"`
}

// TableName specifies the database table name for the Order model.
func (Order) TableName() string {
	return "orders"
}
