package models

import (
	"fmt"
	"time"
)

// Badge và khoảng giá nhà hàng
var (
	RestaurantBadges = []string{"Fine Dining", "Casual Dining", "Fast Food", "Cafe"}
	PriceRanges      = []string{"$", "$$", "$$$", "$$$$"}
)

type Restaurant struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	OwnerID           *uint              `gorm:"index" json:"ownerId"`
	Owner             *User              `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name              string             `json:"name"`
	City              string             `json:"city"`
	Area              string             `json:"area"`
	Badge             string             `json:"badge"`
	CuisineType       string             `json:"cuisineType"` // Ý, Trung, Ấn, Mexico...
	PriceRange        string             `gorm:"default:$$" json:"priceRange"`
	AverageCostForTwo float64            `json:"averageCostForTwo"`
	TotalTables       int                `gorm:"default:10" json:"totalTables"` // tổng số bàn, 0 nghĩa là không nhận đặt
	Description       string             `json:"description"`
	Rating            *float64           `json:"rating,omitempty"`
	Image             string             `json:"image"`
	MenuImage         string             `json:"menuImage"`
	InteriorImage     string             `json:"interiorImage"`
	CreatedAt         time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
	Reservations      []TableReservation `json:"reservations,omitempty" gorm:"foreignKey:RestaurantID"`
}

// ValidateBadge kiểm tra badge hợp lệ
func (r *Restaurant) ValidateBadge() error {
	for _, b := range RestaurantBadges {
		if r.Badge == b {
			return nil
		}
	}
	return fmt.Errorf("invalid badge: %q", r.Badge)
}

// ValidatePriceRange kiểm tra khoảng giá hợp lệ
func (r *Restaurant) ValidatePriceRange() error {
	for _, p := range PriceRanges {
		if r.PriceRange == p {
			return nil
		}
	}
	return fmt.Errorf("invalid priceRange: %q", r.PriceRange)
}

// ValidateCapacity kiểm tra tổng số bàn không âm
func (r *Restaurant) ValidateCapacity() error {
	if r.TotalTables < 0 {
		return fmt.Errorf("invalid totalTables: %d, must not be negative", r.TotalTables)
	}
	return nil
}
