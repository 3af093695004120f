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

type ReservationController struct {
	DB      *gorm.DB
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) ReservationController {
	return ReservationController{
		DB:      db,
		Service: services.NewReservationService(services.ReservationServiceOptions{DB: db}),
	}
}

func reservationToResponse(r models.TableReservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		RestaurantID:    r.RestaurantID,
		ReservationDate: r.ReservationDate.Format(DateLayout),
		ReservationTime: r.ReservationTime,
		NumberOfGuests:  r.NumberOfGuests,
		TablesReserved:  r.TablesReserved,
		SpecialRequests: r.SpecialRequests,
		Status:          r.Status,
		User: dto.ActorResponse{
			Name:        r.User.Name,
			Email:       r.User.Email,
			PhoneNumber: r.User.PhoneNumber,
		},
		Restaurant: restaurantToResponse(r.Restaurant),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// GetReservations liệt kê lượt đặt bàn theo quyền của người gọi
func (ctl ReservationController) GetReservations(c *gin.Context) {
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
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	reservations, total, err := ctl.Service.ListReservations(userID, userRole, page, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		results = append(results, reservationToResponse(reservation))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// CreateReservation đặt bàn cho người gọi
func (ctl ReservationController) CreateReservation(c *gin.Context) {
	userID := c.GetUint("userID")

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse(DateLayout, req.ReservationDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày không hợp lệ, cần dd/mm/yyyy")
		return
	}

	if _, err := time.Parse("15:04", req.ReservationTime); err != nil {
		response.BadRequest(c, "Định dạng giờ không hợp lệ, cần hh:mm")
		return
	}

	reservation, err := ctl.Service.CreateReservation(services.CreateReservationInput{
		UserID:          userID,
		RestaurantID:    req.RestaurantID,
		ReservationDate: date,
		ReservationTime: req.ReservationTime,
		NumberOfGuests:  req.NumberOfGuests,
		TablesReserved:  req.TablesReserved,
		SpecialRequests: req.SpecialRequests,
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

	response.Success(c, reservationToResponse(*reservation))
}

// GetReservationDetail trả về chi tiết một lượt đặt bàn nếu người gọi có quyền xem
func (ctl ReservationController) GetReservationDetail(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reservation, err := ctl.Service.GetReservation(uint(id), userID, userRole)
	if err != nil {
		if err == errors.ErrReservationNotFound {
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

	response.Success(c, reservationToResponse(*reservation))
}

// ChangeReservationStatus chuyển trạng thái lượt đặt bàn (hoàn thành hoặc hủy)
func (ctl ReservationController) ChangeReservationStatus(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reservation, err := ctl.Service.ChangeStatus(uint(id), userID, userRole, req.Status)
	if err != nil {
		if err == errors.ErrReservationNotFound {
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

	response.Success(c, reservationToResponse(*reservation))
}

// CheckTableAvailability kiểm tra còn bàn trống hay không, ai cũng gọi được
func (ctl ReservationController) CheckTableAvailability(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.TableAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse(DateLayout, req.ReservationDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày không hợp lệ, cần dd/mm/yyyy")
		return
	}

	available, message, err := ctl.Service.CheckAvailability(uint(restaurantID), date, req.ReservationTime, req.NumberOfGuests)
	if err != nil {
		if err == errors.ErrRestaurantNotFound {
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
