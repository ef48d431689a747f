// Package group provides CRUD and membership operations for food order groups.
package group

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
	"github.com/ED-LetsCode/Foodtable-Backend/internal/groupid"
)

const (
	// MaxGroupNameLen is the maximum group name length in runes.
	MaxGroupNameLen = 70

	// maxIDAttempts bounds the random id draws before giving up. The id
	// space holds 9*10^9 candidates, so hitting the bound means something
	// is wrong with the database rather than with the dice.
	maxIDAttempts = 100

	// activeClause matches groups whose expiry is unset or in the future.
	activeClause = "(valid_until IS NULL OR valid_until > ?)"
)

// Create persists a new group with a fresh random id. ValidUntil is set to
// one day after creation for one_day groups and left unset otherwise.
func Create(db *gorm.DB, name string, groupType models.GroupType, endOfOrderTime time.Time) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if utf8.RuneCountInString(name) > MaxGroupNameLen {
		return nil, ErrGroupNameTooLong
	}

	g := &models.Group{
		GroupName:      name,
		GroupType:      groupType,
		EndOfOrderTime: endOfOrderTime,
		Created:        time.Now(),
	}

	if g.GroupType == models.GroupTypeOneDay {
		validUntil := g.Created.AddDate(0, 0, 1)
		g.ValidUntil = &validUntil
	}

	id, err := freeID(db)
	if err != nil {
		return nil, err
	}
	g.GroupID = id

	// The existence check above narrows but cannot close the race window
	// between two concurrent creates; the primary key constraint does.
	if result := db.Create(g); result.Error != nil {
		return nil, result.Error
	}

	return g, nil
}

// freeID draws random group ids until one is unused.
func freeID(db *gorm.DB) (uint64, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := groupid.New()

		var existing models.Group
		result := db.First(&existing, id)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return id, nil
		}
		if result.Error != nil {
			return 0, result.Error
		}
	}

	return 0, ErrIDSpaceExhausted
}

// Update replaces a group's name, type and end-of-order time. ValidUntil is
// deliberately not recomputed, even when the type changes.
func Update(db *gorm.DB, id uint64, name string, groupType models.GroupType, endOfOrderTime time.Time) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var g models.Group
	result := db.First(&g, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	if utf8.RuneCountInString(name) > MaxGroupNameLen {
		return nil, ErrGroupNameTooLong
	}

	g.GroupName = name
	g.GroupType = groupType
	g.EndOfOrderTime = endOfOrderTime

	if result = db.Save(&g); result.Error != nil {
		return nil, result.Error
	}

	return &g, nil
}

// Delete removes a group. Memberships, orders and their line items are
// removed by the schema's cascading foreign keys.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Group{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// Get retrieves a group by id.
func Get(db *gorm.DB, id uint64) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var g models.Group
	result := db.First(&g, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	return &g, nil
}

// GetAll retrieves all groups. An empty table is reported as ErrNoGroupsExist.
func GetAll(db *gorm.DB) ([]models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var groups []models.Group
	if result := db.Find(&groups); result.Error != nil {
		return nil, result.Error
	}
	if len(groups) == 0 {
		return nil, ErrNoGroupsExist
	}

	return groups, nil
}

// GetActive retrieves a group only while it is active, meaning its
// ValidUntil is unset or in the future. An expired group is reported the
// same way as a missing one.
func GetActive(db *gorm.DB, id uint64) (*models.Group, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var g models.Group
	result := db.Where(activeClause, time.Now()).First(&g, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	return &g, nil
}
