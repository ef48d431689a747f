// Package order provides CRUD operations for group food orders.
package order

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
)

const (
	// MaxRestaurantNameLen is the maximum restaurant name length in runes.
	MaxRestaurantNameLen = 50
	// MaxEatingSelectionLen is the maximum eating selection length in runes.
	MaxEatingSelectionLen = 100
)

// Create persists a new order for a group and date. The creating user must
// be a member of the group, and the group must not already have an order for
// the date. The duplicate check is racy by itself; the unique index on
// (group_id, order_date) rejects the loser of a concurrent create.
func Create(db *gorm.DB, groupID, userID uint64, restaurantName, eatingSelection string, orderDate *time.Time) (*models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if utf8.RuneCountInString(restaurantName) > MaxRestaurantNameLen {
		return nil, ErrRestaurantNameTooLong
	}
	if utf8.RuneCountInString(eatingSelection) > MaxEatingSelectionLen {
		return nil, ErrEatingSelectionTooLong
	}

	if err := memberOfGroup(db, groupID, userID); err != nil {
		return nil, err
	}

	// "order_date = NULL" matches nothing in SQL, and the unique index
	// treats NULLs as distinct, so dateless orders need the IS NULL form.
	dup := db.Where("group_id = ?", groupID)
	if orderDate == nil {
		dup = dup.Where("order_date IS NULL")
	} else {
		dup = dup.Where("order_date = ?", orderDate)
	}

	var existing models.Order
	result := dup.First(&existing)
	if result.Error == nil {
		return nil, ErrOrderExistsForDate
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	o := &models.Order{
		GroupID:         groupID,
		OrderDate:       orderDate,
		RestaurantName:  restaurantName,
		EatingSelection: eatingSelection,
	}
	if result = db.Create(o); result.Error != nil {
		return nil, result.Error
	}

	return o, nil
}

// memberOfGroup verifies the group exists and the user belongs to it.
func memberOfGroup(db *gorm.DB, groupID, userID uint64) error {
	var g models.Group
	result := db.First(&g, groupID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return result.Error
	}

	var member models.GroupMember
	result = db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrUserNotInGroup
		}
		return result.Error
	}

	return nil
}

// Delete removes an order. The group is checked for existence, but the order
// is looked up by id alone.
func Delete(db *gorm.DB, groupID, orderID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	var g models.Group
	result := db.First(&g, groupID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return result.Error
	}

	result = db.Delete(&models.Order{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// GetAll retrieves all orders. An empty list is not an error.
func GetAll(db *gorm.DB) ([]models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var orders []models.Order
	if result := db.Find(&orders); result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

// Update replaces an order's restaurant name and eating selection. The date
// and the owning group are immutable once created.
func Update(db *gorm.DB, orderID, groupID uint64, restaurantName, eatingSelection string) (*models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if utf8.RuneCountInString(restaurantName) > MaxRestaurantNameLen {
		return nil, ErrRestaurantNameTooLong
	}
	if utf8.RuneCountInString(eatingSelection) > MaxEatingSelectionLen {
		return nil, ErrEatingSelectionTooLong
	}

	var g models.Group
	result := db.First(&g, groupID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
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

	o.RestaurantName = restaurantName
	o.EatingSelection = eatingSelection

	if result = db.Save(&o); result.Error != nil {
		return nil, result.Error
	}

	return &o, nil
}

// Get retrieves an order by id.
func Get(db *gorm.DB, orderID uint64) (*models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var o models.Order
	result := db.First(&o, orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}

	return &o, nil
}
