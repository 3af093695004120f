package models

import (
	"time"

	"gorm.io/gorm"

	"bookezy/constants"
)

// Booking đặt phòng khách sạn theo khoảng ngày [checkIn, checkOut)
type Booking struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"userId"`
	User           User      `json:"user" gorm:"foreignKey:UserID"`
	HotelID        uint      `gorm:"index" json:"hotelId"`
	Hotel          Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
	CheckIn        time.Time `gorm:"type:date;index" json:"checkIn"`
	CheckOut       time.Time `gorm:"type:date;index" json:"checkOut"`
	NumberOfGuests int       `gorm:"default:2" json:"numberOfGuests"`
	RoomsReserved  int       `gorm:"default:1" json:"roomsReserved"`
	Status         int       `gorm:"default:1" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeSave tính lại số phòng tối thiểu theo số khách và chỉ nâng lên,
// không hạ xuống: caller được phép đặt nhiều phòng hơn mức tối thiểu.
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	if b.NumberOfGuests < 1 {
		// update từng cột (vd đổi status) không mang theo số khách
		return nil
	}
	minRooms, err := RequiredUnits(b.NumberOfGuests, constants.GuestsPerRoom)
	if err != nil {
		return err
	}
	if b.RoomsReserved < minRooms {
		b.RoomsReserved = minRooms
	}
	return nil
}
