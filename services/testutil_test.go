package services

import (
	"path/filepath"
	"testing"

	"bookezy/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PasswordResetOTP{},
		&models.Hotel{},
		&models.Restaurant{},
		&models.Booking{},
		&models.TableReservation{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role int) models.User {
	t.Helper()

	user := models.User{
		Name:        "Test " + email,
		Email:       email,
		Password:    "hashed",
		PhoneNumber: "0123456789",
		Role:        role,
		IsVerified:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestHotel(t *testing.T, db *gorm.DB, ownerID uint, totalRooms int) models.Hotel {
	t.Helper()

	hotel := models.Hotel{
		OwnerID:    &ownerID,
		Name:       "Khách sạn Hoa Sen",
		City:       "Đà Nẵng",
		Badge:      "Luxury Stays",
		Price:      1200000,
		TotalRooms: totalRooms,
	}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func createTestRestaurant(t *testing.T, db *gorm.DB, ownerID uint, totalTables int) models.Restaurant {
	t.Helper()

	restaurant := models.Restaurant{
		OwnerID:     &ownerID,
		Name:        "Nhà hàng Sông Hàn",
		City:        "Đà Nẵng",
		Badge:       "Casual Dining",
		CuisineType: "Việt",
		PriceRange:  "$$",
		TotalTables: totalTables,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}
