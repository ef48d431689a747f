package models

// UserOrder is one user's individual line item (product and quantity)
// within an order. The referenced user must be a member of the group that
// owns the order at creation time; membership is not re-validated later.
type UserOrder struct {
	// UserOrderID is the unique identifier for the line item.
	UserOrderID uint64 `gorm:"primaryKey;column:user_order_id" json:"userOrderId"`
	// OrderID is the ID of the order this line item belongs to.
	OrderID uint64 `gorm:"not null;column:order_id" json:"orderId"`
	// UserID is the ID of the user this line item is for.
	UserID uint64 `gorm:"not null;column:user_id" json:"userId"`
	// ProductName names the ordered product.
	ProductName string `gorm:"size:100" json:"productName"`
	// AmountOfProduct is the ordered quantity.
	AmountOfProduct int `json:"amountOfProduct"`
	// Order is the parent order (loaded via foreign key).
	// When an order is deleted, its line items are automatically removed (CASCADE).
	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	// User is the referenced user (loaded via foreign key).
	// When a user is deleted, their line items are automatically removed (CASCADE).
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the database table name for the UserOrder model.
func (UserOrder) TableName() string {
	return "user_orders"
}
