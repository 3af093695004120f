package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Badge khách sạn
var HotelBadges = []string{"Luxury Stays", "Cheap & Best", "Dormitory"}

type Hotel struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	OwnerID          *uint          `gorm:"index" json:"ownerId"` // cho phép NULL với dữ liệu cũ
	Owner            *User          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name             string         `json:"name"`
	City             string         `json:"city"`
	Area             string         `json:"area"`
	Badge            string         `json:"badge"`
	Price            float64        `json:"price"`
	OldPrice         *float64       `json:"oldPrice,omitempty"`
	TotalRooms       int            `gorm:"default:1" json:"totalRooms"` // tổng số phòng, 0 nghĩa là không nhận đặt
	Description      string         `json:"description"`
	Amenities        pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Image            string         `json:"image"`
	RoomImage1       string         `json:"roomImage1"`
	RoomImage2       string         `json:"roomImage2"`
	EnvironmentImage string         `json:"environmentImage"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings         []Booking      `json:"bookings,omitempty" gorm:"foreignKey:HotelID"`
}

// ValidateBadge kiểm tra badge hợp lệ
func (h *Hotel) ValidateBadge() error {
	for _, b := range HotelBadges {
		if h.Badge == b {
			return nil
		}
	}
	return fmt.Errorf("invalid badge: %q", h.Badge)
}

// ValidateCapacity kiểm tra tổng số phòng không âm
func (h *Hotel) ValidateCapacity() error {
	if h.TotalRooms < 0 {
		return fmt.Errorf("invalid totalRooms: %d, must not be negative", h.TotalRooms)
	}
	return nil
}
