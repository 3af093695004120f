package dto

import "time"

// CreateBookingRequest nhận ngày dạng chuỗi "02/01/2006" như client gửi lên
type CreateBookingRequest struct {
	HotelID        uint   `json:"hotelId" binding:"required"`
	CheckIn        string `json:"checkIn" binding:"required"`
	CheckOut       string `json:"checkOut" binding:"required"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required"`
	RoomsReserved  int    `json:"roomsReserved"`
}

type BookingResponse struct {
	ID             uint          `json:"id"`
	UserID         uint          `json:"userId"`
	HotelID        uint          `json:"hotelId"`
	CheckIn        string        `json:"checkIn"`
	CheckOut       string        `json:"checkOut"`
	NumberOfGuests int           `json:"numberOfGuests"`
	RoomsReserved  int           `json:"roomsReserved"`
	Status         int           `json:"status"`
	User           ActorResponse `json:"user"`
	Hotel          HotelResponse `json:"hotel"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// UpdateBookingStatusRequest là DTO cho request cập nhật trạng thái đặt phòng
type UpdateBookingStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// AvailabilityRequest là tham số query kiểm tra phòng trống
type AvailabilityRequest struct {
	CheckIn        string `form:"checkIn" binding:"required"`
	CheckOut       string `form:"checkOut" binding:"required"`
	NumberOfGuests int    `form:"numberOfGuests" binding:"required"`
	RoomsReserved  int    `form:"roomsReserved"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
