package userorder

// createInput is the JSON body for adding a line item to an order.
type createInput struct {
	GroupID         uint64 `json:"groupId" validate:"required"`
	UserID          uint64 `json:"userId" validate:"required"`
	OrderID         uint64 `json:"orderId" validate:"required"`
	ProductName     string `json:"productName" validate:"required,max=100"`
	AmountOfProduct int    `json:"amountOfProduct" validate:"required,min=1"`
}

// updateInput is the JSON body for updating a line item.
type updateInput struct {
	UserOrderID     uint64 `json:"userOrderId" validate:"required"`
	OrderID         uint64 `json:"orderId" validate:"required"`
	UserID          uint64 `json:"userId" validate:"required"`
	ProductName     string `json:"productName" validate:"required,max=100"`
	AmountOfProduct int    `json:"amountOfProduct" validate:"required,min=1"`
}
