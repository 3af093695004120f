package models

import (
	"testing"

	"bookezy/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionStatus(t *testing.T) {
	tests := []struct {
		name    string
		current int
		target  int
		want    int
		wantErr bool
	}{
		{"confirmed có thể hủy", constants.ReservationStatusConfirmed, constants.ReservationStatusCancelled, constants.ReservationStatusCancelled, false},
		{"confirmed có thể hoàn thành", constants.ReservationStatusConfirmed, constants.ReservationStatusCompleted, constants.ReservationStatusCompleted, false},
		{"completed không thể hủy", constants.ReservationStatusCompleted, constants.ReservationStatusCancelled, 0, true},
		{"completed không thể hoàn thành lại", constants.ReservationStatusCompleted, constants.ReservationStatusCompleted, 0, true},
		{"cancelled không thể hoàn thành", constants.ReservationStatusCancelled, constants.ReservationStatusCompleted, 0, true},
		{"cancelled không thể hủy lại", constants.ReservationStatusCancelled, constants.ReservationStatusCancelled, 0, true},
		{"trạng thái lạ là lỗi", 99, constants.ReservationStatusCancelled, 0, true},
		{"đích không hỗ trợ là lỗi", constants.ReservationStatusConfirmed, 99, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionStatus(tt.current, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingBeforeSave_ClampIsIdempotent(t *testing.T) {
	b := &Booking{NumberOfGuests: 4, RoomsReserved: 1}
	require.NoError(t, b.BeforeSave(nil))
	assert.Equal(t, 2, b.RoomsReserved)

	// Chạy lại không đổi gì nữa
	require.NoError(t, b.BeforeSave(nil))
	assert.Equal(t, 2, b.RoomsReserved)

	// Đặt dư phòng thì giữ nguyên, không hạ xuống
	b = &Booking{NumberOfGuests: 4, RoomsReserved: 5}
	require.NoError(t, b.BeforeSave(nil))
	assert.Equal(t, 5, b.RoomsReserved)
}

func TestReservationBeforeSave_ClampByTableOccupancy(t *testing.T) {
	r := &TableReservation{NumberOfGuests: 9, TablesReserved: 1}
	require.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, 3, r.TablesReserved)

	// update từng cột không mang theo số khách thì bỏ qua
	r = &TableReservation{NumberOfGuests: 0, TablesReserved: 0}
	require.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, 0, r.TablesReserved)
}
