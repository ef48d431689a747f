// Package user provides CRUD operations for users and user-scoped group and
// order queries.
package user

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
)

// MaxNameLen is the maximum first/last name length in runes. It applies to
// create and update alike.
const MaxNameLen = 25

// Get retrieves a user by id.
func Get(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	result := db.First(&u, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// GetAll retrieves all users. An empty table is reported as ErrNoUsersExist.
func GetAll(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	if result := db.Find(&users); result.Error != nil {
		return nil, result.Error
	}
	if len(users) == 0 {
		return nil, ErrNoUsersExist
	}

	return users, nil
}

// Create persists a new user.
func Create(db *gorm.DB, firstName, lastName string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if err := validateNames(firstName, lastName); err != nil {
		return nil, err
	}

	u := &models.User{
		FirstName: firstName,
		LastName:  lastName,
	}
	if result := db.Create(u); result.Error != nil {
		return nil, result.Error
	}

	return u, nil
}

// Update replaces a user's first and last name.
func Update(db *gorm.DB, id uint64, firstName, lastName string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	result := db.First(&u, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	if err := validateNames(firstName, lastName); err != nil {
		return nil, err
	}

	u.FirstName = firstName
	u.LastName = lastName

	if result = db.Save(&u); result.Error != nil {
		return nil, result.Error
	}

	return &u, nil
}

func validateNames(firstName, lastName string) error {
	if firstName == "" || lastName == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(firstName) > MaxNameLen || utf8.RuneCountInString(lastName) > MaxNameLen {
		return ErrNameTooLong
	}

	return nil
}

// Delete removes a user. Memberships and line items are removed by the
// schema's cascading foreign keys.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Groups returns the user with all groups they belong to.
func Groups(db *gorm.DB, id uint64) (*models.User, error) {
	return groupsWhere(db, id, nil)
}

// ActiveGroups returns the user with their groups filtered to active ones,
// meaning ValidUntil is unset or in the future.
func ActiveGroups(db *gorm.DB, id uint64) (*models.User, error) {
	now := time.Now()
	return groupsWhere(db, id, &now)
}

func groupsWhere(db *gorm.DB, id uint64, activeAt *time.Time) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	u, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	tx := db.
		Joins("JOIN group_members ON group_members.group_id = groups.group_id").
		Where("group_members.user_id = ?", id)
	if activeAt != nil {
		tx = tx.Where("(valid_until IS NULL OR valid_until > ?)", *activeAt)
	}

	var groups []models.Group
	if result := tx.Find(&groups); result.Error != nil {
		return nil, result.Error
	}

	u.Groups = groups

	return u, nil
}

// Orders returns all line items belonging to the user, which may be empty.
func Orders(db *gorm.DB, id uint64) ([]models.UserOrder, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := Get(db, id); err != nil {
		return nil, err
	}

	var userOrders []models.UserOrder
	result := db.Where("user_id = ?", id).Find(&userOrders)
	if result.Error != nil {
		return nil, result.Error
	}

	return userOrders, nil
}
