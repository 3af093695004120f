package models

import "fmt"

// RequiredUnits đổi số khách thành số đơn vị (phòng/bàn) tối thiểu, làm tròn lên.
// Dùng chung cho lúc tạo, lúc kiểm tra chỗ trống và hook BeforeSave để không lệch nhau.
func RequiredUnits(guestCount, occupancyPerUnit int) (int, error) {
	if guestCount < 1 {
		return 0, fmt.Errorf("invalid guest count: %d, must be at least 1", guestCount)
	}
	if occupancyPerUnit < 1 {
		return 0, fmt.Errorf("invalid occupancy per unit: %d, must be at least 1", occupancyPerUnit)
	}
	return (guestCount + occupancyPerUnit - 1) / occupancyPerUnit, nil
}
