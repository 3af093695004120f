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
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewRestaurantController(db *gorm.DB, redisCli *redis.Client) RestaurantController {
	return RestaurantController{
		DB:    db,
		Redis: redisCli,
	}
}

const restaurantCachePrefix = "restaurants:"

func restaurantToResponse(r models.Restaurant) dto.RestaurantResponse {
	resp := dto.RestaurantResponse{
		ID:                r.ID,
		Name:              r.Name,
		City:              r.City,
		Area:              r.Area,
		Badge:             r.Badge,
		CuisineType:       r.CuisineType,
		PriceRange:        r.PriceRange,
		AverageCostForTwo: r.AverageCostForTwo,
		TotalTables:       r.TotalTables,
		Description:       r.Description,
		Rating:            r.Rating,
		Image:             r.Image,
		MenuImage:         r.MenuImage,
		InteriorImage:     r.InteriorImage,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Owner != nil {
		resp.OwnerName = r.Owner.Name
	}
	return resp
}

// GetRestaurants liệt kê nhà hàng với bộ lọc, có cache Redis
func (r RestaurantController) GetRestaurants(c *gin.Context) {
	var filter dto.RestaurantFilter
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

	cacheKey := fmt.Sprintf("%scity_%s:badge_%s:cuisine_%s:price_%s:name_%s:page_%d:limit_%d",
		restaurantCachePrefix, filter.City, filter.Badge, filter.CuisineType,
		filter.PriceRange, filter.Name, filter.Page, filter.Limit)

	var cached dto.PaginatedResponse[[]dto.RestaurantResponse]
	if err := services.GetFromRedis(config.Ctx, r.Redis, cacheKey, &cached); err == nil && len(cached.Data) > 0 {
		response.SuccessWithPagination(c, cached.Data, filter.Page, filter.Limit, cached.Pagination.Total)
		return
	}

	query := r.DB.Model(&models.Restaurant{}).Preload("Owner")

	if filter.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}
	if filter.Badge != "" {
		query = query.Where("badge = ?", filter.Badge)
	}
	if filter.CuisineType != "" {
		query = query.Where("LOWER(cuisine_type) = ?", strings.ToLower(filter.CuisineType))
	}
	if filter.PriceRange != "" {
		query = query.Where("price_range = ?", filter.PriceRange)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var restaurants []models.Restaurant
	if err := query.Order("created_at DESC").
		Offset(filter.Page * filter.Limit).Limit(filter.Limit).
		Find(&restaurants).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		results = append(results, restaurantToResponse(restaurant))
	}

	payload := dto.PaginatedResponse[[]dto.RestaurantResponse]{
		Data: results,
		Pagination: response.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: int(total),
		},
	}
	if err := services.SetToRedis(config.Ctx, r.Redis, cacheKey, payload, 5*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu danh sách nhà hàng vào Redis: %v", err)
	}

	response.SuccessWithPagination(c, results, filter.Page, filter.Limit, int(total))
}

// GetRestaurantDetail trả về chi tiết một nhà hàng
func (r RestaurantController) GetRestaurantDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var restaurant models.Restaurant
	if err := r.DB.Preload("Owner").First(&restaurant, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, restaurantToResponse(restaurant))
}

// CreateRestaurant tạo nhà hàng mới, chủ sở hữu là người gọi
func (r RestaurantController) CreateRestaurant(c *gin.Context) {
	userID := c.GetUint("userID")

	var input dto.RestaurantRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	restaurant := models.Restaurant{
		OwnerID:           &userID,
		Name:              input.Name,
		City:              input.City,
		Area:              input.Area,
		Badge:             input.Badge,
		CuisineType:       input.CuisineType,
		PriceRange:        input.PriceRange,
		AverageCostForTwo: input.AverageCostForTwo,
		TotalTables:       input.TotalTables,
		Description:       input.Description,
		Rating:            input.Rating,
		Image:             input.Image,
		MenuImage:         input.MenuImage,
		InteriorImage:     input.InteriorImage,
	}
	if restaurant.PriceRange == "" {
		restaurant.PriceRange = "$$"
	}

	if err := validator.ValidateRestaurant(&restaurant); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := r.DB.Create(&restaurant).Error; err != nil {
		response.ServerError(c)
		return
	}

	r.invalidateCache()

	response.Success(c, restaurantToResponse(restaurant))
}

// UpdateRestaurant cập nhật nhà hàng, chỉ chủ sở hữu hoặc admin
func (r RestaurantController) UpdateRestaurant(c *gin.Context) {
	userID := c.GetUint("userID")
	userRole := c.GetInt("userRole")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var restaurant models.Restaurant
	if err := r.DB.First(&restaurant, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if userRole != constants.RoleAdmin && (restaurant.OwnerID == nil || *restaurant.OwnerID != userID) {
		response.Forbidden(c)
		return
	}

	var input dto.RestaurantRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	restaurant.Name = input.Name
	restaurant.City = input.City
	restaurant.Area = input.Area
	restaurant.Badge = input.Badge
	restaurant.CuisineType = input.CuisineType
	restaurant.PriceRange = input.PriceRange
	restaurant.AverageCostForTwo = input.AverageCostForTwo
	restaurant.TotalTables = input.TotalTables
	restaurant.Description = input.Description
	restaurant.Rating = input.Rating
	restaurant.Image = input.Image
	restaurant.MenuImage = input.MenuImage
	restaurant.InteriorImage = input.InteriorImage

	if err := validator.ValidateRestaurant(&restaurant); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := r.DB.Save(&restaurant).Error; err != nil {
		response.ServerError(c)
		return
	}

	r.invalidateCache()

	response.Success(c, restaurantToResponse(restaurant))
}

// SearchRestaurants tìm kiếm gần đúng theo tên hoặc loại ẩm thực
func (r RestaurantController) SearchRestaurants(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	restaurants, err := services.SearchRestaurants(r.DB, query)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		results = append(results, restaurantToResponse(restaurant))
	}

	response.Success(c, results)
}

func (r RestaurantController) invalidateCache() {
	if err := services.DeleteByPrefix(config.Ctx, r.Redis, restaurantCachePrefix); err != nil {
		log.Printf("Lỗi khi xóa cache nhà hàng: %v", err)
	}
}
