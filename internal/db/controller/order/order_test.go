package order

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ED-LetsCode/Foodtable-Backend/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.GroupMember{},
		&models.Order{},
		&models.UserOrder{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedGroupWithMember inserts a group and a user that belongs to it.
func seedGroupWithMember(t *testing.T, db *gorm.DB) (*models.Group, *models.User) {
	t.Helper()

	g := &models.Group{
		GroupID:   3_141_592_653,
		GroupName: "Lunch Crew",
		GroupType: models.GroupTypeWeekly,
		Created:   time.Now(),
	}
	require.NoError(t, db.Create(g).Error, "failed to seed group")

	u := &models.User{FirstName: "Anna", LastName: "Schmidt"}
	require.NoError(t, db.Create(u).Error, "failed to seed user")

	m := &models.GroupMember{GroupID: g.GroupID, UserID: u.UserID}
	require.NoError(t, db.Create(m).Error, "failed to seed membership")

	return g, u
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)
	g, u := seedGroupWithMember(t, db)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("nil database", func(t *testing.T) {
		o, err := Create(nil, g.GroupID, u.UserID, "Luigi", "", &date)
		require.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, o)
	})

	t.Run("restaurant name too long", func(t *testing.T) {
		o, err := Create(db, g.GroupID, u.UserID, strings.Repeat("x", MaxRestaurantNameLen+1), "", &date)
		require.ErrorIs(t, err, ErrRestaurantNameTooLong)
		assert.Nil(t, o)
	})

	t.Run("eating selection too long", func(t *testing.T) {
		o, err := Create(db, g.GroupID, u.UserID, "Luigi", strings.Repeat("x", MaxEatingSelectionLen+1), &date)
		require.ErrorIs(t, err, ErrEatingSelectionTooLong)
		assert.Nil(t, o)
	})

	t.Run("group not found", func(t *testing.T) {
		o, err := Create(db, 9_999_999_999, u.UserID, "Luigi", "", &date)
		require.ErrorIs(t, err, ErrGroupNotFound)
		assert.Nil(t, o)
	})

	t.Run("user is no member", func(t *testing.T) {
		outsider := models.User{FirstName: "Ben", LastName: "Fischer"}
		require.NoError(t, db.Create(&outsider).Error)

		o, err := Create(db, g.GroupID, outsider.UserID, "Luigi", "", &date)
		require.ErrorIs(t, err, ErrUserNotInGroup)
		assert.Nil(t, o)
	})

	t.Run("successful create", func(t *testing.T) {
		o, err := Create(db, g.GroupID, u.UserID, "Luigi", "Pizza Funghi", &date)
		require.NoError(t, err)
		assert.NotZero(t, o.OrderID)
		assert.Equal(t, g.GroupID, o.GroupID)
		assert.Equal(t, "Luigi", o.RestaurantName)
	})

	t.Run("second order for the same date is rejected", func(t *testing.T) {
		o, err := Create(db, g.GroupID, u.UserID, "Kebab Haus", "", &date)
		require.ErrorIs(t, err, ErrOrderExistsForDate)
		assert.Nil(t, o)
	})

	t.Run("another date is fine", func(t *testing.T) {
		nextDay := date.AddDate(0, 0, 1)

		o, err := Create(db, g.GroupID, u.UserID, "Kebab Haus", "", &nextDay)
		require.NoError(t, err)
		assert.NotZero(t, o.OrderID)
	})
}

func TestCreateWithoutDate(t *testing.T) {
	db := setupTestDB(t)
	g, u := seedGroupWithMember(t, db)

	t.Run("first dateless order", func(t *testing.T) {
		o, err := Create(db, g.GroupID, u.UserID, "Luigi", "", nil)
		require.NoError(t, err)
		assert.Nil(t, o.OrderDate)
	})

	t.Run("second dateless order is rejected", func(t *testing.T) {
		o, err := Create(db, g.GroupID, u.UserID, "Kebab Haus", "", nil)
		require.ErrorIs(t, err, ErrOrderExistsForDate)
		assert.Nil(t, o)
	})

	t.Run("a dated order is still allowed", func(t *testing.T) {
		date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		o, err := Create(db, g.GroupID, u.UserID, "Kebab Haus", "", &date)
		require.NoError(t, err)
		assert.NotZero(t, o.OrderID)
	})
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	g, u := seedGroupWithMember(t, db)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	o, err := Create(db, g.GroupID, u.UserID, "Luigi", "", &date)
	require.NoError(t, err)

	t.Run("nil database", func(t *testing.T) {
		require.ErrorIs(t, Delete(nil, g.GroupID, o.OrderID), ErrDBNil)
	})

	t.Run("group not found", func(t *testing.T) {
		require.ErrorIs(t, Delete(db, 9_999_999_999, o.OrderID), ErrGroupNotFound)
	})

	t.Run("order not found", func(t *testing.T) {
		require.ErrorIs(t, Delete(db, g.GroupID, 424242), ErrOrderNotFound)
	})

	t.Run("delete cascades to line items", func(t *testing.T) {
		uo := models.UserOrder{OrderID: o.OrderID, UserID: u.UserID, ProductName: "Pizza", AmountOfProduct: 1}
		require.NoError(t, db.Create(&uo).Error)

		require.NoError(t, Delete(db, g.GroupID, o.OrderID))

		var lineItemCount int64
		require.NoError(t, db.Model(&models.UserOrder{}).Where("order_id = ?", o.OrderID).Count(&lineItemCount).Error)
		assert.Zero(t, lineItemCount)

		_, err = Get(db, o.OrderID)
		require.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	t.Run("nil database", func(t *testing.T) {
		orders, err := GetAll(nil)
		require.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, orders)
	})

	t.Run("empty table is no error", func(t *testing.T) {
		orders, err := GetAll(db)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("multiple orders", func(t *testing.T) {
		g, u := seedGroupWithMember(t, db)
		first := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		second := first.AddDate(0, 0, 1)

		_, err := Create(db, g.GroupID, u.UserID, "Luigi", "", &first)
		require.NoError(t, err)
		_, err = Create(db, g.GroupID, u.UserID, "Kebab Haus", "", &second)
		require.NoError(t, err)

		orders, err := GetAll(db)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)
	g, u := seedGroupWithMember(t, db)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	o, err := Create(db, g.GroupID, u.UserID, "Luigi", "Pizza Funghi", &date)
	require.NoError(t, err)

	t.Run("group not found", func(t *testing.T) {
		updated, err := Update(db, o.OrderID, 9_999_999_999, "Kebab Haus", "")
		require.ErrorIs(t, err, ErrGroupNotFound)
		assert.Nil(t, updated)
	})

	t.Run("order not found", func(t *testing.T) {
		updated, err := Update(db, 424242, g.GroupID, "Kebab Haus", "")
		require.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, updated)
	})

	t.Run("restaurant name too long", func(t *testing.T) {
		updated, err := Update(db, o.OrderID, g.GroupID, strings.Repeat("x", MaxRestaurantNameLen+1), "")
		require.ErrorIs(t, err, ErrRestaurantNameTooLong)
		assert.Nil(t, updated)
	})

	t.Run("date and group stay untouched", func(t *testing.T) {
		updated, err := Update(db, o.OrderID, g.GroupID, "Kebab Haus", "Dürüm")
		require.NoError(t, err)
		assert.Equal(t, "Kebab Haus", updated.RestaurantName)
		assert.Equal(t, "Dürüm", updated.EatingSelection)
		assert.Equal(t, g.GroupID, updated.GroupID)
		require.NotNil(t, updated.OrderDate)
		assert.True(t, updated.OrderDate.Equal(date))
	})
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	t.Run("order not found", func(t *testing.T) {
		o, err := Get(db, 424242)
		require.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, o)
	})

	t.Run("successful get", func(t *testing.T) {
		g, u := seedGroupWithMember(t, db)
		date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		created, err := Create(db, g.GroupID, u.UserID, "Luigi", "", &date)
		require.NoError(t, err)

		got, err := Get(db, created.OrderID)
		require.NoError(t, err)
		assert.Equal(t, created.OrderID, got.OrderID)
		assert.Equal(t, "Luigi", got.RestaurantName)
	})
}
