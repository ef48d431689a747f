package group

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
)

// OrderForDate returns the group together with the order matching the given
// id and date, including the order's line items. The group must exist and an
// order with the given id must exist somewhere; a date or group mismatch
// merely leaves the nested order list empty.
func OrderForDate(db *gorm.DB, groupID, orderID uint64, date time.Time) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	g, err := Get(db, groupID)
	if err != nil {
		return nil, err
	}

	var existing models.Order
	result := db.First(&existing, orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}

	var orders []models.Order
	result = db.
		Where("group_id = ? AND order_id = ? AND order_date = ?", groupID, orderID, date).
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range orders {
		var lineItems []models.UserOrder
		result = db.Where("order_id = ?", orders[i].OrderID).Find(&lineItems)
		if result.Error != nil {
			return nil, result.Error
		}
		orders[i].UserOrders = lineItems
	}

	g.Orders = orders

	return g, nil
}

// CountUserOrdersForDate counts the line items of the order matching the
// exact group, order id and date. No matching order is an error.
func CountUserOrdersForDate(db *gorm.DB, groupID, orderID uint64, date time.Time) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var o models.Order
	result := db.
		Where("group_id = ? AND order_id = ? AND order_date = ?", groupID, orderID, date).
		First(&o)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, ErrOrderNotFound
		}
		return 0, result.Error
	}

	var count int64
	result = db.Model(&models.UserOrder{}).Where("order_id = ?", orderID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
