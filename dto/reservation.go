package dto

import "time"

// CreateReservationRequest nhận ngày dạng "02/01/2006" và giờ dạng "15:04"
type CreateReservationRequest struct {
	RestaurantID    uint   `json:"restaurantId" binding:"required"`
	ReservationDate string `json:"reservationDate" binding:"required"`
	ReservationTime string `json:"reservationTime" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required"`
	TablesReserved  int    `json:"tablesReserved"`
	SpecialRequests string `json:"specialRequests"`
}

type ReservationResponse struct {
	ID              uint               `json:"id"`
	UserID          uint               `json:"userId"`
	RestaurantID    uint               `json:"restaurantId"`
	ReservationDate string             `json:"reservationDate"`
	ReservationTime string             `json:"reservationTime"`
	NumberOfGuests  int                `json:"numberOfGuests"`
	TablesReserved  int                `json:"tablesReserved"`
	SpecialRequests string             `json:"specialRequests"`
	Status          int                `json:"status"`
	User            ActorResponse      `json:"user"`
	Restaurant      RestaurantResponse `json:"restaurant"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// UpdateReservationStatusRequest là DTO cho request cập nhật trạng thái đặt bàn
type UpdateReservationStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// TableAvailabilityRequest là tham số query kiểm tra bàn trống
type TableAvailabilityRequest struct {
	ReservationDate string `form:"reservationDate" binding:"required"`
	ReservationTime string `form:"reservationTime" binding:"required"`
	NumberOfGuests  int    `form:"numberOfGuests" binding:"required"`
	TablesReserved  int    `form:"tablesReserved"`
}
