package controllers

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"bookezy/config"
	"bookezy/constants"
	"bookezy/dto"
	"bookezy/errors"
	"bookezy/models"
	"bookezy/response"
	"bookezy/services"
	"bookezy/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HotelController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHotelController(db *gorm.DB, redisCli *redis.Client) HotelController {
	return HotelController{
		DB:    db,
		Redis: redisCli,
	}
}

const hotelCachePrefix = "hotels:"

func hotelToResponse(h models.Hotel) dto.HotelResponse {
	resp := dto.HotelResponse{
		ID:               h.ID,
		Name:             h.Name,
		City:             h.City,
		Area:             h.Area,
		Badge:            h.Badge,
		Price:            h.Price,
		OldPrice:         h.OldPrice,
		TotalRooms:       h.TotalRooms,
		Description:      h.Description,
		Amenities:        h.Amenities,
		Image:            h.Image,
		RoomImage1:       h.RoomImage1,
		RoomImage2:       h.RoomImage2,
		EnvironmentImage: h.EnvironmentImage,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
	if h.Owner != nil {
		resp.OwnerName = h.Owner.Name
	}
	return resp
}

// GetHotels liệt kê khách sạn với bộ lọc, có cache Redis
func (h HotelController) GetHotels(c *gin.Context) {
	var filter dto.HotelFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	cacheKey := fmt.Sprintf("%scity_%s:badge_%s:name_%s:page_%d:limit_%d",
		hotelCachePrefix, filter.City, filter.Badge, filter.Name, filter.Page, filter.Limit)
	if filter.MaxPrice != nil {
		cacheKey += fmt.Sprintf(":maxPrice_%.0f", *filter.MaxPrice)
	}

	var cached dto.PaginatedResponse[[]dto.HotelResponse]
	if err := services.GetFromRedis(config.Ctx, h.Redis, cacheKey, &cached); err == nil && len(cached.Data) > 0 {
		response.SuccessWithPagination(c, cached.Data, filter.Page, filter.Limit, cached.Pagination.Total)
		return
	}

	query := h.DB.Model(&models.Hotel{}).Preload("Owner")

	if filter.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}
	if filter.Badge != "" {
		query = query.Where("badge = ?", filter.Badge)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var hotels []models.Hotel
	if err := query.Order("created_at DESC").
		Offset(filter.Page * filter.Limit).Limit(filter.Limit).
		Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		results = append(results, hotelToResponse(hotel))
	}

	payload := dto.PaginatedResponse[[]dto.HotelResponse]{
		Data: results,
		Pagination: response.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: int(total),
		},
	}
	if err := services.SetToRedis(config.Ctx, h.Redis, cacheKey, payload, 5*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách khách sạn vào Redis: %v", err)
	}

	response.SuccessWithPagination(c, results, filter.Page, filter.Limit, int(total))
}

// GetHotelDetail trả về chi tiết một khách sạn
func (h HotelController) GetHotelDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var hotel models.Hotel
	if err := h.DB.Preload("Owner").First(&hotel, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, hotelToResponse(hotel))
}

// CreateHotel tạo khách sạn mới, chủ sở hữu là người gọi
func (h HotelController) CreateHotel(c *gin.Context) {
	userID := c.GetUint("userID")

	var input dto.HotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel := models.Hotel{
		OwnerID:          &userID,
		Name:             input.Name,
		City:             input.City,
		Area:             input.Area,
		Badge:            input.Badge,
		Price:            input.Price,
		OldPrice:         input.OldPrice,
		TotalRooms:       input.TotalRooms,
		Description:      input.Description,
		Amenities:        pq.StringArray(input.Amenities),
		Image:            input.Image,
		RoomImage1:       input.RoomImage1,
		RoomImage2:       input.RoomImage2,
		EnvironmentImage: input.EnvironmentImage,
	}

	if err := validator.ValidateHotel(&hotel); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	h.invalidateCache()

	response.Success(c, hotelToResponse(hotel))
}

// UpdateHotel cập nhật khách sạn, chỉ chủ sở hữu hoặc admin
func (h HotelController) UpdateHotel(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var hotel models.Hotel
	if err := h.DB.First(&hotel, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if userRole != constants.RoleAdmin && (hotel.OwnerID == nil || *hotel.OwnerID != userID) {
		response.Forbidden(c)
		return
	}

	var input dto.HotelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel.Name = input.Name
	hotel.City = input.City
	hotel.Area = input.Area
	hotel.Badge = input.Badge
	hotel.Price = input.Price
	hotel.OldPrice = input.OldPrice
	hotel.TotalRooms = input.TotalRooms
	hotel.Description = input.Description
	hotel.Amenities = pq.StringArray(input.Amenities)
	hotel.Image = input.Image
	hotel.RoomImage1 = input.RoomImage1
	hotel.RoomImage2 = input.RoomImage2
	hotel.EnvironmentImage = input.EnvironmentImage

	if err := validator.ValidateHotel(&hotel); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.DB.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	h.invalidateCache()

	response.Success(c, hotelToResponse(hotel))
}

// SearchHotels tìm kiếm gần đúng theo tên
func (h HotelController) SearchHotels(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	hotels, err := services.SearchHotels(h.DB, query)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		results = append(results, hotelToResponse(hotel))
	}

	response.Success(c, results)
}

func (h HotelController) invalidateCache() {
	if err := services.DeleteByPrefix(config.Ctx, h.Redis, hotelCachePrefix); err != nil {
		log.Printf("Lỗi khi xóa cache khách sạn: %v", err)
	}
}
