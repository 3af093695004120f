package services

import (
	"testing"
	"time"

	"bookezy/constants"
	"bookezy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRequiredUnits(t *testing.T) {
	tests := []struct {
		name      string
		guests    int
		occupancy int
		want      int
		wantErr   bool
	}{
		{"một khách một phòng đôi", 1, constants.GuestsPerRoom, 1, false},
		{"hai khách vừa đủ một phòng", 2, constants.GuestsPerRoom, 1, false},
		{"ba khách cần hai phòng", 3, constants.GuestsPerRoom, 2, false},
		{"bốn khách vừa đủ một bàn", 4, constants.GuestsPerTable, 1, false},
		{"năm khách cần hai bàn", 5, constants.GuestsPerTable, 2, false},
		{"tám khách hai bàn", 8, constants.GuestsPerTable, 2, false},
		{"không khách là lỗi", 0, constants.GuestsPerRoom, 0, true},
		{"khách âm là lỗi", -1, constants.GuestsPerRoom, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.RequiredUnits(tt.guests, tt.occupancy)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlappingUnits_HalfOpenInterval(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewCapacityLedger(db)

	user := createTestUser(t, db, "guest@example.com", constants.RoleUser)
	hotel := createTestHotel(t, db, user.ID, 10)

	booking := models.Booking{
		UserID:         user.ID,
		HotelID:        hotel.ID,
		CheckIn:        date(2026, time.January, 1),
		CheckOut:       date(2026, time.January, 3),
		NumberOfGuests: 2,
		RoomsReserved:  2,
		Status:         constants.ReservationStatusConfirmed,
	}
	require.NoError(t, db.Create(&booking).Error)

	// Trả phòng ngày 3, nhận phòng ngày 3: không trùng
	total, err := ledger.OverlappingUnits(nil, BookingUnitQuery(hotel.ID,
		date(2026, time.January, 3), date(2026, time.January, 5), 0))
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	// [1,3) và [2,4): trùng
	total, err = ledger.OverlappingUnits(nil, BookingUnitQuery(hotel.ID,
		date(2026, time.January, 2), date(2026, time.January, 4), 0))
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// Khoảng nằm trọn bên trong cũng trùng
	total, err = ledger.OverlappingUnits(nil, BookingUnitQuery(hotel.ID,
		date(2025, time.December, 20), date(2026, time.February, 1), 0))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestOverlappingUnits_IgnoresTerminalStatuses(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewCapacityLedger(db)

	user := createTestUser(t, db, "guest@example.com", constants.RoleUser)
	hotel := createTestHotel(t, db, user.ID, 10)

	for _, status := range []int{constants.ReservationStatusCancelled, constants.ReservationStatusCompleted} {
		require.NoError(t, db.Create(&models.Booking{
			UserID:         user.ID,
			HotelID:        hotel.ID,
			CheckIn:        date(2026, time.January, 1),
			CheckOut:       date(2026, time.January, 3),
			NumberOfGuests: 2,
			RoomsReserved:  3,
			Status:         status,
		}).Error)
	}

	total, err := ledger.OverlappingUnits(nil, BookingUnitQuery(hotel.ID,
		date(2026, time.January, 1), date(2026, time.January, 3), 0))
	require.NoError(t, err)
	assert.Equal(t, 0, total, "lượt đã hủy và đã hoàn thành phải giải phóng chỗ")
}

func TestOverlappingUnits_ExactMatchForTables(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewCapacityLedger(db)

	user := createTestUser(t, db, "guest@example.com", constants.RoleUser)
	restaurant := createTestRestaurant(t, db, user.ID, 10)

	require.NoError(t, db.Create(&models.TableReservation{
		UserID:          user.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: date(2026, time.March, 8),
		ReservationTime: "19:30",
		NumberOfGuests:  4,
		TablesReserved:  2,
		Status:          constants.ReservationStatusConfirmed,
	}).Error)

	// Cùng ngày cùng giờ: trùng
	total, err := ledger.OverlappingUnits(nil, ReservationUnitQuery(restaurant.ID,
		date(2026, time.March, 8), "19:30", 0))
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// Cùng ngày khác giờ: không trùng
	total, err = ledger.OverlappingUnits(nil, ReservationUnitQuery(restaurant.ID,
		date(2026, time.March, 8), "20:00", 0))
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	// Khác ngày cùng giờ: không trùng
	total, err = ledger.OverlappingUnits(nil, ReservationUnitQuery(restaurant.ID,
		date(2026, time.March, 9), "19:30", 0))
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestAvailableUnits_CanGoNegative(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewCapacityLedger(db)

	user := createTestUser(t, db, "guest@example.com", constants.RoleUser)
	hotel := createTestHotel(t, db, user.ID, 5)

	require.NoError(t, db.Create(&models.Booking{
		UserID:         user.ID,
		HotelID:        hotel.ID,
		CheckIn:        date(2026, time.January, 1),
		CheckOut:       date(2026, time.January, 3),
		NumberOfGuests: 8,
		RoomsReserved:  4,
		Status:         constants.ReservationStatusConfirmed,
	}).Error)

	// Sức chứa bị hạ xuống dưới số chỗ đã giữ
	available, err := ledger.AvailableUnits(nil, 3,
		BookingUnitQuery(hotel.ID, date(2026, time.January, 1), date(2026, time.January, 3), 0))
	require.NoError(t, err)
	assert.Equal(t, -1, available)
}
