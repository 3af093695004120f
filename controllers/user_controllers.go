package controllers

import (
	"log"
	"strconv"
	"time"

	"bookezy/config"
	"bookezy/constants"
	"bookezy/dto"
	"bookezy/models"
	"bookezy/response"
	"bookezy/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{
		DB:    db,
		Redis: redisCli,
	}
}

// GetUsers liệt kê người dùng, chỉ admin được gọi
func (u UserController) GetUsers(c *gin.Context) {
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

	cacheKey := "users:all"

	var allUsers []models.User
	if err := services.GetFromRedis(config.Ctx, u.Redis, cacheKey, &allUsers); err != nil || len(allUsers) == 0 {
		if err := u.DB.Order("created_at DESC").Find(&allUsers).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, u.Redis, cacheKey, allUsers, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách người dùng vào Redis: %v", err)
		}
	}

	// Lọc theo role nếu có
	if roleStr := c.Query("role"); roleStr != "" {
		role, err := strconv.Atoi(roleStr)
		if err == nil {
			filtered := make([]models.User, 0, len(allUsers))
			for _, user := range allUsers {
				if user.Role == role {
					filtered = append(filtered, user)
				}
			}
			allUsers = filtered
		}
	}

	total := len(allUsers)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	users := make([]dto.UserLoginResponse, 0, end-start)
	for _, user := range allUsers[start:end] {
		users = append(users, dto.UserLoginResponse{
			UserID:       user.ID,
			UserName:     user.Name,
			UserEmail:    user.Email,
			UserVerified: user.IsVerified,
			UserPhone:    user.PhoneNumber,
			UserRole:     user.Role,
			UserAvatar:   user.Avatar,
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		})
	}

	response.SuccessWithPagination(c, users, page, limit, total)
}

// GetProfile trả về thông tin người dùng hiện tại
func (u UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
}

// UpdateRole cho người gọi tự đổi vai trò của chính mình,
// ví dụ nâng tài khoản khách lên chủ khách sạn. Role admin
// không nằm trong các giá trị được gán.
func (u UserController) UpdateRole(c *gin.Context) {
	userID := c.GetUint("userID")
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var input dto.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Role < constants.RoleUser || input.Role >= constants.RoleAdmin {
		response.BadRequest(c, "Role không hợp lệ")
		return
	}

	var user models.User
	if err := u.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Role = input.Role
	if err := u.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Danh sách user đã cache không còn đúng nữa
	if err := services.DeleteFromRedis(config.Ctx, u.Redis, "users:all"); err != nil {
		log.Printf("Lỗi khi xóa cache người dùng: %v", err)
	}

	response.Success(c, gin.H{
		"id":   user.ID,
		"role": user.Role,
	})
}
