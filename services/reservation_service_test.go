package services

import (
	"testing"
	"time"

	"bookezy/constants"
	"bookezy/errors"
	"bookezy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservationService(t *testing.T) (*ReservationService, *models.User, *models.Restaurant) {
	t.Helper()

	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com", constants.RoleRestaurantOwner)
	restaurant := createTestRestaurant(t, db, owner.ID, 3)
	svc := NewReservationService(ReservationServiceOptions{DB: db})
	return svc, &owner, &restaurant
}

func futureDate() time.Time {
	return truncateToDate(time.Now().AddDate(0, 0, 14))
}

func TestCreateReservation_RejectsPastDate(t *testing.T) {
	svc, _, restaurant := newTestReservationService(t)
	guest := createTestUser(t, svc.db, "guest@example.com", constants.RoleUser)

	_, err := svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: time.Now().AddDate(0, 0, -1),
		ReservationTime: "19:30",
		NumberOfGuests:  4,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodePastDate, appErr.Code)
}

func TestCreateReservation_AcceptsToday(t *testing.T) {
	svc, _, restaurant := newTestReservationService(t)
	guest := createTestUser(t, svc.db, "guest@example.com", constants.RoleUser)

	// Đặt bàn trong ngày hôm nay vẫn được chấp nhận dù giờ đã qua
	_, err := svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: time.Now(),
		ReservationTime: "00:01",
		NumberOfGuests:  4,
	})
	require.NoError(t, err)
}

func TestCreateReservation_ExactSlotCapacity(t *testing.T) {
	svc, _, restaurant := newTestReservationService(t)
	guest := createTestUser(t, svc.db, "guest@example.com", constants.RoleUser)
	day := futureDate()

	// 3 bàn: 12 khách chiếm hết trong một slot
	_, err := svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: day,
		ReservationTime: "19:30",
		NumberOfGuests:  12,
	})
	require.NoError(t, err)

	// Cùng slot: hết bàn
	_, err = svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: day,
		ReservationTime: "19:30",
		NumberOfGuests:  2,
	})
	require.Error(t, err)
	capErr, ok := errors.IsCapacityError(err)
	require.True(t, ok)
	assert.Equal(t, 0, capErr.Available)
	assert.Equal(t, "bàn", capErr.Unit)

	// Slot khác cùng ngày vẫn đặt được
	_, err = svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: day,
		ReservationTime: "20:00",
		NumberOfGuests:  2,
	})
	require.NoError(t, err)
}

func TestCreateReservation_ClampsTablesUp(t *testing.T) {
	svc, _, restaurant := newTestReservationService(t)
	db := svc.db
	guest := createTestUser(t, db, "guest@example.com", constants.RoleUser)

	require.NoError(t, db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).
		Update("total_tables", 10).Error)

	// 5 khách yêu cầu 1 bàn: nâng lên 2
	reservation, err := svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: futureDate(),
		ReservationTime: "19:30",
		NumberOfGuests:  5,
		TablesReserved:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reservation.TablesReserved)

	// 5 khách yêu cầu 4 bàn: giữ nguyên
	reservation, err = svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: futureDate(),
		ReservationTime: "20:30",
		NumberOfGuests:  5,
		TablesReserved:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, reservation.TablesReserved)
}

func TestCreateReservation_ZeroCapacityIsUnbookable(t *testing.T) {
	svc, _, restaurant := newTestReservationService(t)
	db := svc.db
	guest := createTestUser(t, db, "guest@example.com", constants.RoleUser)

	require.NoError(t, db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).
		Update("total_tables", 0).Error)

	_, err := svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: futureDate(),
		ReservationTime: "19:30",
		NumberOfGuests:  2,
	})
	require.Error(t, err)
	capErr, ok := errors.IsCapacityError(err)
	require.True(t, ok)
	assert.Equal(t, 0, capErr.Available)
}

func TestReservationChangeStatus_FreesSlot(t *testing.T) {
	svc, _, restaurant := newTestReservationService(t)
	guest := createTestUser(t, svc.db, "guest@example.com", constants.RoleUser)
	day := futureDate()

	reservation, err := svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: day,
		ReservationTime: "19:30",
		NumberOfGuests:  12,
	})
	require.NoError(t, err)

	available, _, err := svc.CheckAvailability(restaurant.ID, day, "19:30", 2)
	require.NoError(t, err)
	assert.False(t, available)

	_, err = svc.ChangeStatus(reservation.ID, guest.ID, constants.RoleUser, constants.ReservationStatusCancelled)
	require.NoError(t, err)

	available, _, err = svc.CheckAvailability(restaurant.ID, day, "19:30", 2)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestListReservations_OwnershipScoping(t *testing.T) {
	svc, owner, restaurant := newTestReservationService(t)
	db := svc.db
	guest := createTestUser(t, db, "guest@example.com", constants.RoleUser)
	stranger := createTestUser(t, db, "stranger@example.com", constants.RoleUser)

	_, err := svc.CreateReservation(CreateReservationInput{
		UserID:          guest.ID,
		RestaurantID:    restaurant.ID,
		ReservationDate: futureDate(),
		ReservationTime: "19:30",
		NumberOfGuests:  2,
	})
	require.NoError(t, err)

	// Người đặt thấy lượt của mình
	_, total, err := svc.ListReservations(guest.ID, constants.RoleUser, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Chủ nhà hàng thấy lượt đặt vào nhà hàng của mình
	_, total, err = svc.ListReservations(owner.ID, constants.RoleRestaurantOwner, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Người lạ không thấy gì
	_, total, err = svc.ListReservations(stranger.ID, constants.RoleUser, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
