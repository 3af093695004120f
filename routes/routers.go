package routes

import (
	"context"
	"net/http"

	"bookezy/constants"
	"bookezy/controllers"
	middlewares "bookezy/middleware"

	"github.com/gin-gonic/gin"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	userController := controllers.NewUserController(db, redisCli)
	hotelController := controllers.NewHotelController(db, redisCli)
	restaurantController := controllers.NewRestaurantController(db, redisCli)
	bookingController := controllers.NewBookingController(db)
	reservationController := controllers.NewReservationController(db)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// auth
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/verifyOTP", controllers.VerifyOTP)
	v1.POST("/resetPassword", controllers.ResetPassword)

	// users
	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleAdmin), userController.GetUsers)
	v1.PUT("/users/role", middlewares.AuthMiddleware(), userController.UpdateRole)
	v1.GET("/profile", middlewares.AuthMiddleware(), userController.GetProfile)

	// hotels
	v1.GET("/hotels", hotelController.GetHotels)
	v1.GET("/hotels/search", hotelController.SearchHotels)
	v1.GET("/hotels/:id", hotelController.GetHotelDetail)
	v1.GET("/hotels/:id/availability", bookingController.CheckAvailability)
	v1.POST("/hotels", middlewares.AuthMiddleware(constants.RoleHotelOwner, constants.RoleAdmin), hotelController.CreateHotel)
	v1.PUT("/hotels/:id", middlewares.AuthMiddleware(constants.RoleHotelOwner, constants.RoleAdmin), hotelController.UpdateHotel)

	// restaurants
	v1.GET("/restaurants", restaurantController.GetRestaurants)
	v1.GET("/restaurants/search", restaurantController.SearchRestaurants)
	v1.GET("/restaurants/:id", restaurantController.GetRestaurantDetail)
	v1.GET("/restaurants/:id/availability", reservationController.CheckTableAvailability)
	v1.POST("/restaurants", middlewares.AuthMiddleware(constants.RoleRestaurantOwner, constants.RoleAdmin), restaurantController.CreateRestaurant)
	v1.PUT("/restaurants/:id", middlewares.AuthMiddleware(constants.RoleRestaurantOwner, constants.RoleAdmin), restaurantController.UpdateRestaurant)

	// bookings
	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id/status", middlewares.AuthMiddleware(), bookingController.ChangeBookingStatus)

	// reservations
	v1.GET("/reservations", middlewares.AuthMiddleware(), reservationController.GetReservations)
	v1.POST("/reservations", middlewares.AuthMiddleware(), reservationController.CreateReservation)
	v1.GET("/reservations/:id", middlewares.AuthMiddleware(), reservationController.GetReservationDetail)
	v1.PUT("/reservations/:id/status", middlewares.AuthMiddleware(), reservationController.ChangeReservationStatus)

	// upload ảnh
	v1.POST("/img/uploads", middlewares.AuthMiddleware(constants.RoleHotelOwner, constants.RoleRestaurantOwner, constants.RoleAdmin), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		files := form.File["files"]
		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			src.Close()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
