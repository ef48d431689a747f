package order

// createInput is the JSON body for placing a group order.
type createInput struct {
	GroupID         uint64  `json:"groupId" validate:"required"`
	UserID          uint64  `json:"userId" validate:"required"`
	RestaurantName  string  `json:"restaurantName" validate:"required,max=50"`
	EatingSelection string  `json:"eatingSelection" validate:"max=100"`
	OrderDate       *string `json:"orderDate" validate:"omitempty"`
}

// updateInput is the JSON body for updating a group order. Only the
// restaurant and the eating selection can change.
type updateInput struct {
	OrderID         uint64 `json:"orderId" validate:"required"`
	GroupID         uint64 `json:"groupId" validate:"required"`
	RestaurantName  string `json:"restaurantName" validate:"required,max=50"`
	EatingSelection string `json:"eatingSelection" validate:"max=100"`
}
