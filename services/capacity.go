package services

import (
	"time"

	"gorm.io/gorm"

	"bookezy/constants"
	"bookezy/models"
)

// CapacityLedger cộng dồn số đơn vị đã giữ chỗ của các lượt đặt confirmed
// trùng với khoảng thời gian truy vấn. Dùng chung cho khách sạn lẫn nhà hàng,
// chỉ khác nhau ở scope trùng lặp và cột đơn vị.
type CapacityLedger struct {
	db *gorm.DB
}

func NewCapacityLedger(db *gorm.DB) *CapacityLedger {
	return &CapacityLedger{db: db}
}

// UnitQuery mô tả một truy vấn cộng dồn đơn vị
type UnitQuery struct {
	Model       interface{}                  // &models.Booking{} hoặc &models.TableReservation{}
	UnitsColumn string                       // "rooms_reserved" hoặc "tables_reserved"
	Overlap     func(tx *gorm.DB) *gorm.DB   // điều kiện trùng thời gian
	ExcludeID   uint                         // bỏ qua một lượt đặt (khi update tại chỗ), 0 nếu không
}

// OverlappingUnits trả về tổng đơn vị đã giữ trong khoảng truy vấn.
// Chỉ tính các lượt confirmed; đã hủy/hoàn thành luôn giải phóng chỗ.
func (l *CapacityLedger) OverlappingUnits(tx *gorm.DB, q UnitQuery) (int, error) {
	if tx == nil {
		tx = l.db
	}

	var total int64
	query := tx.Model(q.Model).
		Select("COALESCE(SUM("+q.UnitsColumn+"), 0)").
		Where("status = ?", constants.ReservationStatusConfirmed)
	query = q.Overlap(query)
	if q.ExcludeID != 0 {
		query = query.Where("id <> ?", q.ExcludeID)
	}

	if err := query.Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

// AvailableUnits = sức chứa - đã giữ. Có thể âm nếu sức chứa bị hạ
// xuống dưới số chỗ đã đặt trước đó; không chặn trường hợp này.
func (l *CapacityLedger) AvailableUnits(tx *gorm.DB, capacity int, q UnitQuery) (int, error) {
	overlapping, err := l.OverlappingUnits(tx, q)
	if err != nil {
		return 0, err
	}
	return capacity - overlapping, nil
}

// BookingOverlap điều kiện trùng cho khoảng ngày nửa mở [checkIn, checkOut):
// trả phòng ngày X và nhận phòng ngày X không tính là trùng.
func BookingOverlap(hotelID uint, checkIn, checkOut time.Time) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("hotel_id = ? AND check_in < ? AND check_out > ?", hotelID, checkOut, checkIn)
	}
}

// ReservationOverlap điều kiện trùng cho đặt bàn: trùng đúng ngày và giờ.
// Không mô hình hóa thời lượng ngồi.
func ReservationOverlap(restaurantID uint, date time.Time, timeSlot string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("restaurant_id = ? AND reservation_date = ? AND reservation_time = ?", restaurantID, date, timeSlot)
	}
}

// BookingUnitQuery truy vấn đơn vị phòng cho một khách sạn
func BookingUnitQuery(hotelID uint, checkIn, checkOut time.Time, excludeID uint) UnitQuery {
	return UnitQuery{
		Model:       &models.Booking{},
		UnitsColumn: "rooms_reserved",
		Overlap:     BookingOverlap(hotelID, checkIn, checkOut),
		ExcludeID:   excludeID,
	}
}

// ReservationUnitQuery truy vấn đơn vị bàn cho một nhà hàng
func ReservationUnitQuery(restaurantID uint, date time.Time, timeSlot string, excludeID uint) UnitQuery {
	return UnitQuery{
		Model:       &models.TableReservation{},
		UnitsColumn: "tables_reserved",
		Overlap:     ReservationOverlap(restaurantID, date, timeSlot),
		ExcludeID:   excludeID,
	}
}
