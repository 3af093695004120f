package dto

import "time"

type RestaurantRequest struct {
	Name              string   `json:"name" binding:"required"`
	City              string   `json:"city" binding:"required"`
	Area              string   `json:"area"`
	Badge             string   `json:"badge" binding:"required"`
	CuisineType       string   `json:"cuisineType"`
	PriceRange        string   `json:"priceRange"`
	AverageCostForTwo float64  `json:"averageCostForTwo"`
	TotalTables       int      `json:"totalTables"`
	Description       string   `json:"description"`
	Rating            *float64 `json:"rating"`
	Image             string   `json:"image"`
	MenuImage         string   `json:"menuImage"`
	InteriorImage     string   `json:"interiorImage"`
}

type RestaurantResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	City              string    `json:"city"`
	Area              string    `json:"area"`
	Badge             string    `json:"badge"`
	CuisineType       string    `json:"cuisineType"`
	PriceRange        string    `json:"priceRange"`
	AverageCostForTwo float64   `json:"averageCostForTwo"`
	TotalTables       int       `json:"totalTables"`
	Description       string    `json:"description"`
	Rating            *float64  `json:"rating,omitempty"`
	Image             string    `json:"image"`
	MenuImage         string    `json:"menuImage"`
	InteriorImage     string    `json:"interiorImage"`
	OwnerName         string    `json:"ownerName,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// RestaurantFilter gom các tham số lọc danh sách nhà hàng
type RestaurantFilter struct {
	City        string `form:"city"`
	Badge       string `form:"badge"`
	CuisineType string `form:"cuisineType"`
	PriceRange  string `form:"priceRange"`
	Name        string `form:"name"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}
