package models

import (
	"time"

	"gorm.io/gorm"

	"bookezy/constants"
)

// TableReservation đặt bàn nhà hàng tại một thời điểm (ngày + giờ),
// không mô hình hóa thời lượng ngồi: hai lượt đặt chỉ trùng nhau khi
// trùng cả ngày lẫn giờ.
type TableReservation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index" json:"userId"`
	User            User       `json:"user" gorm:"foreignKey:UserID"`
	RestaurantID    uint       `gorm:"index" json:"restaurantId"`
	Restaurant      Restaurant `json:"restaurant" gorm:"foreignKey:RestaurantID"`
	ReservationDate time.Time  `gorm:"type:date;index" json:"reservationDate"`
	ReservationTime string     `gorm:"type:varchar(5)" json:"reservationTime"` // "19:30"
	NumberOfGuests  int        `gorm:"default:2" json:"numberOfGuests"`
	TablesReserved  int        `gorm:"default:1" json:"tablesReserved"`
	SpecialRequests string     `json:"specialRequests"`
	Status          int        `gorm:"default:1" json:"status"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeSave tính lại số bàn tối thiểu theo số khách, cùng quy tắc
// nâng-không-hạ với Booking.
func (r *TableReservation) BeforeSave(tx *gorm.DB) error {
	if r.NumberOfGuests < 1 {
		return nil
	}
	minTables, err := RequiredUnits(r.NumberOfGuests, constants.GuestsPerTable)
	if err != nil {
		return err
	}
	if r.TablesReserved < minTables {
		r.TablesReserved = minTables
	}
	return nil
}
