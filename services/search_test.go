package services

import (
	"testing"

	"bookezy/constants"
	"bookezy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "khach san hoa sen", NormalizeInput("  Khách Sạn Hoa Sen "))
	assert.Equal(t, "nha hang song han", NormalizeInput("Nhà hàng Sông Hàn"))
}

func TestSearchHotels_FuzzyByName(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", constants.RoleHotelOwner)

	names := []string{"Khách sạn Hoa Sen", "Khách sạn Biển Xanh", "Nhà nghỉ Bình Minh"}
	for _, name := range names {
		hotel := models.Hotel{
			OwnerID:    &owner.ID,
			Name:       name,
			City:       "Đà Nẵng",
			Badge:      "Cheap & Best",
			TotalRooms: 5,
		}
		require.NoError(t, db.Create(&hotel).Error)
	}

	// Không dấu vẫn khớp
	results, err := SearchHotels(db, "hoa sen")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Khách sạn Hoa Sen", results[0].Name)

	// Gõ sai một ký tự vẫn tìm được
	results, err = SearchHotels(db, "bien xanh")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Khách sạn Biển Xanh", results[0].Name)
}

func TestSearchRestaurants_MatchesCuisine(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", constants.RoleRestaurantOwner)

	restaurant := models.Restaurant{
		OwnerID:     &owner.ID,
		Name:        "Quán Ngon",
		City:        "Hà Nội",
		Badge:       "Casual Dining",
		CuisineType: "Ý",
		PriceRange:  "$$",
		TotalTables: 10,
	}
	require.NoError(t, db.Create(&restaurant).Error)

	results, err := SearchRestaurants(db, "quan ngon")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Quán Ngon", results[0].Name)
}
