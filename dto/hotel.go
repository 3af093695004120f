package dto

import (
	"time"

	"github.com/lib/pq"
)

type HotelRequest struct {
	Name             string   `json:"name" binding:"required"`
	City             string   `json:"city" binding:"required"`
	Area             string   `json:"area"`
	Badge            string   `json:"badge" binding:"required"`
	Price            float64  `json:"price"`
	OldPrice         *float64 `json:"oldPrice"`
	TotalRooms       int      `json:"totalRooms"`
	Description      string   `json:"description"`
	Amenities        []string `json:"amenities"`
	Image            string   `json:"image"`
	RoomImage1       string   `json:"roomImage1"`
	RoomImage2       string   `json:"roomImage2"`
	EnvironmentImage string   `json:"environmentImage"`
}

type HotelResponse struct {
	ID               uint           `json:"id"`
	Name             string         `json:"name"`
	City             string         `json:"city"`
	Area             string         `json:"area"`
	Badge            string         `json:"badge"`
	Price            float64        `json:"price"`
	OldPrice         *float64       `json:"oldPrice,omitempty"`
	TotalRooms       int            `json:"totalRooms"`
	Description      string         `json:"description"`
	Amenities        pq.StringArray `json:"amenities"`
	Image            string         `json:"image"`
	RoomImage1       string         `json:"roomImage1"`
	RoomImage2       string         `json:"roomImage2"`
	EnvironmentImage string         `json:"environmentImage"`
	OwnerName        string         `json:"ownerName,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// HotelFilter gom các tham số lọc danh sách khách sạn
type HotelFilter struct {
	City     string   `form:"city"`
	Badge    string   `form:"badge"`
	MaxPrice *float64 `form:"maxPrice"`
	Name     string   `form:"name"`
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
}
