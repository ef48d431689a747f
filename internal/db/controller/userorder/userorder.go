// Package userorder provides CRUD operations for per-user line items within
// an order. Update, Delete and Get key line items by the exact
// (user, order, line item) triple.
package userorder

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
)

// MaxProductNameLen is the maximum product name length in runes.
const MaxProductNameLen = 100

const tripleQueryPattern = "user_id = ? AND order_id = ? AND user_order_id = ?"

// Create persists a new line item. The group must exist, the user must be a
// member of it and the parent order must exist. Membership is only checked
// here; a user leaving the group later does not invalidate the line item.
func Create(db *gorm.DB, groupID, userID, orderID uint64, productName string, amount int) (*models.UserOrder, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if utf8.RuneCountInString(productName) > MaxProductNameLen {
		return nil, ErrProductNameTooLong
	}

	var g models.Group
	result := db.First(&g, groupID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	var member models.GroupMember
	result = db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotInGroup
		}
		return nil, result.Error
	}

	var o models.Order
	result = db.First(&o, orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}

	uo := &models.UserOrder{
		OrderID:         orderID,
		UserID:          userID,
		ProductName:     productName,
		AmountOfProduct: amount,
	}
	if result = db.Create(uo); result.Error != nil {
		return nil, result.Error
	}

	return uo, nil
}

// Update replaces a line item's product name and amount.
func Update(db *gorm.DB, userID, orderID, userOrderID uint64, productName string, amount int) (*models.UserOrder, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if utf8.RuneCountInString(productName) > MaxProductNameLen {
		return nil, ErrProductNameTooLong
	}

	var uo models.UserOrder
	result := db.Where(tripleQueryPattern, userID, orderID, userOrderID).First(&uo)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserOrderNotFound
		}
		return nil, result.Error
	}

	uo.ProductName = productName
	uo.AmountOfProduct = amount

	if result = db.Save(&uo); result.Error != nil {
		return nil, result.Error
	}

	return &uo, nil
}

// Delete removes a line item.
func Delete(db *gorm.DB, userID, orderID, userOrderID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where(tripleQueryPattern, userID, orderID, userOrderID).Delete(&models.UserOrder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserOrderNotFound
	}

	return nil
}

// Get retrieves a line item.
func Get(db *gorm.DB, userID, orderID, userOrderID uint64) (*models.UserOrder, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var uo models.UserOrder
	result := db.Where(tripleQueryPattern, userID, orderID, userOrderID).First(&uo)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserOrderNotFound
		}
		return nil, result.Error
	}

	return &uo, nil
}

// GetAll retrieves all line items. An empty list is not an error.
func GetAll(db *gorm.DB) ([]models.UserOrder, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var userOrders []models.UserOrder
	if result := db.Find(&userOrders); result.Error != nil {
		return nil, result.Error
	}

	return userOrders, nil
}
