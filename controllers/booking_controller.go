package controllers

import (
	"strconv"
	"time"

	"bookezy/dto"
	"bookezy/errors"
	"bookezy/models"
	"bookezy/response"
	"bookezy/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DateLayout là định dạng ngày client gửi lên
const DateLayout = "02/01/2006"

type BookingController struct {
	DB      *gorm.DB
	Service *services.BookingService
}

func NewBookingController(db *gorm.DB) BookingController {
	return BookingController{
		DB:      db,
		Service: services.NewBookingService(services.BookingServiceOptions{DB: db}),
	}
}

func bookingToResponse(b models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		HotelID:        b.HotelID,
		CheckIn:        b.CheckIn.Format(DateLayout),
		CheckOut:       b.CheckOut.Format(DateLayout),
		NumberOfGuests: b.NumberOfGuests,
		RoomsReserved:  b.RoomsReserved,
		Status:         b.Status,
		User: dto.ActorResponse{
			Name:        b.User.Name,
			Email:       b.User.Email,
			PhoneNumber: b.User.PhoneNumber,
		},
		Hotel:     hotelToResponse(b.Hotel),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// GetBookings liệt kê lượt đặt phòng theo quyền của người gọi:
// admin thấy tất cả, còn lại thấy lượt đặt của mình và của khách sạn mình sở hữu
func (ctl BookingController) GetBookings(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		page, _ = strconv.Atoi(pageStr)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}
	// OFFSET âm làm Postgres báo lỗi
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	bookings, total, err := ctl.Service.ListBookings(userID, userRole, page, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		results = append(results, bookingToResponse(booking))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// CreateBooking đặt phòng cho người gọi
func (ctl BookingController) CreateBooking(c *gin.Context) {
	userID := c.GetUint("userID")

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày nhận phòng không hợp lệ, cần dd/mm/yyyy")
		return
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày trả phòng không hợp lệ, cần dd/mm/yyyy")
		return
	}

	booking, err := ctl.Service.CreateBooking(services.CreateBookingInput{
		UserID:         userID,
		HotelID:        req.HotelID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: req.NumberOfGuests,
		RoomsReserved:  req.RoomsReserved,
	})
	if err != nil {
		if capErr, ok := errors.IsCapacityError(err); ok {
			response.Conflict(c, capErr.Error())
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, bookingToResponse(*booking))
}

// GetBookingDetail trả về chi tiết một lượt đặt phòng nếu người gọi có quyền xem
func (ctl BookingController) GetBookingDetail(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := ctl.Service.GetBooking(uint(id), userID, userRole)
	if err != nil {
		if err == errors.ErrBookingNotFound {
			response.NotFound(c)
			return
		}
		if err == errors.ErrUnauthorized {
			response.Forbidden(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, bookingToResponse(*booking))
}

// ChangeBookingStatus chuyển trạng thái lượt đặt phòng (hoàn thành hoặc hủy)
func (ctl BookingController) ChangeBookingStatus(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := ctl.Service.ChangeStatus(uint(id), userID, userRole, req.Status)
	if err != nil {
		if err == errors.ErrBookingNotFound {
			response.NotFound(c)
			return
		}
		if err == errors.ErrUnauthorized {
			response.Forbidden(c)
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, bookingToResponse(*booking))
}

// CheckAvailability kiểm tra còn phòng trống hay không, ai cũng gọi được
func (ctl BookingController) CheckAvailability(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày nhận phòng không hợp lệ, cần dd/mm/yyyy")
		return
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày trả phòng không hợp lệ, cần dd/mm/yyyy")
		return
	}

	available, message, err := ctl.Service.CheckAvailability(uint(hotelID), checkIn, checkOut, req.NumberOfGuests)
	if err != nil {
		if err == errors.ErrHotelNotFound {
			response.NotFound(c)
			return
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AvailabilityResponse{
		Available: available,
		Message:   message,
	})
}
