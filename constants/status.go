package constants

// User role
const (
	RoleUser            = 0
	RoleHotelOwner      = 1
	RoleRestaurantOwner = 2
	RoleAdmin           = 3
)

// Reservation status. Lượt đặt được ghi thẳng ở trạng thái confirmed,
// không có trạng thái chờ trước đó.
const (
	ReservationStatusConfirmed = 1
	ReservationStatusCompleted = 2
	ReservationStatusCancelled = 3
)

// Occupancy: số khách tối đa trên một đơn vị (phòng/bàn)
const (
	GuestsPerRoom  = 2
	GuestsPerTable = 4
)
