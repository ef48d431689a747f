package group

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
)

const memberQueryPattern = "group_id = ? AND user_id = ?"

// AddMember adds a user to a group and returns the group with its members.
// Both sides must exist and the user must not already be a member.
func AddMember(db *gorm.DB, groupID, userID uint64) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	g, err := Get(db, groupID)
	if err != nil {
		return nil, err
	}

	var u models.User
	result := db.First(&u, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	var existing models.GroupMember
	result = db.Where(memberQueryPattern, groupID, userID).First(&existing)
	if result.Error == nil {
		return nil, ErrUserAlreadyInGroup
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	member := models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
	}
	if result = db.Create(&member); result.Error != nil {
		return nil, result.Error
	}

	g.Users, err = Members(db, groupID)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// RemoveMember removes a user from a group. A missing membership is an error
// even when both the group and the user exist.
func RemoveMember(db *gorm.DB, groupID, userID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	if _, err := Get(db, groupID); err != nil {
		return err
	}

	var u models.User
	result := db.First(&u, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return result.Error
	}

	result = db.Where(memberQueryPattern, groupID, userID).Delete(&models.GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotInGroup
	}

	return nil
}

// Members returns the users belonging to a group, which may be empty.
func Members(db *gorm.DB, groupID uint64) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := Get(db, groupID); err != nil {
		return nil, err
	}

	var users []models.User
	result := db.
		Joins("JOIN group_members ON group_members.user_id = users.user_id").
		Where("group_members.group_id = ?", groupID).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// CountMembers returns the number of users in a group.
func CountMembers(db *gorm.DB, groupID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	if _, err := Get(db, groupID); err != nil {
		return 0, err
	}

	var count int64
	result := db.Model(&models.GroupMember{}).Where("group_id = ?", groupID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
