package services

import (
	"crypto/rand"
	stderrors "errors"
	"fmt"
	"math/big"
	"time"

	"bookezy/config"
	"bookezy/constants"
	"bookezy/errors"
	"bookezy/models"
	"bookezy/services/logger"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var authLog = logger.NewFromEnv()

// generateOTPCode sinh mã 6 chữ số bằng crypto/rand
func generateOTPCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với số điện thoại %s", phoneNumber)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, stderrors.New("không được để trống email, password, phone")
	}

	if err := input.ValidateRole(); err != nil {
		return models.User{}, err
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	existingPhone, err := GetUserByPhoneNumber(input.PhoneNumber)
	if err == nil {
		return models.User{}, fmt.Errorf("số điện thoại %s đã được sử dụng", existingPhone.PhoneNumber)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		IsVerified:  true,
		Role:        input.Role,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Name:        input.Name,
		Avatar:      input.Avatar,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	authLog.Info("tạo tài khoản mới: userID=%d role=%d", user.ID, user.Role)

	return user, nil
}

func CreateGoogleUser(name, email, avatar string) (models.User, error) {

	existingEmail, err := GetUserByEmail(email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   "",
		Avatar:     avatar,
		IsVerified: true,
		Role:       constants.RoleUser,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// SendResetOTP sinh mã OTP, lưu vào DB rồi gửi qua email.
// KHÔNG ghi giá trị OTP vào log; chi tiết luồng chỉ xuất hiện ở mức Debug.
func SendResetOTP(email string) error {
	user, err := GetUserByEmail(email)
	if err != nil {
		// Không tiết lộ email có tồn tại hay không, controller trả về
		// thông điệp chung cho cả hai trường hợp
		authLog.Debug("yêu cầu OTP cho email không tồn tại")
		return errors.ErrUserNotFound
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("không thể tạo mã OTP: %v", err)
	}

	otp := models.PasswordResetOTP{
		UserID:     user.ID,
		OTP:        code,
		IsVerified: false,
		CreatedAt:  time.Now(),
	}

	if err := config.DB.Create(&otp).Error; err != nil {
		return fmt.Errorf("không thể lưu mã OTP: %v", err)
	}

	if err := SendOTPEmail(user.Email, code); err != nil {
		return fmt.Errorf("không thể gửi email OTP: %v", err)
	}

	authLog.Info("đã gửi OTP đặt lại mật khẩu: userID=%d", user.ID)
	return nil
}

// VerifyResetOTP kiểm tra mã OTP mới nhất của user và đánh dấu đã xác thực
func VerifyResetOTP(email, code string) error {
	user, err := GetUserByEmail(email)
	if err != nil {
		return errors.ErrUserNotFound
	}

	var otp models.PasswordResetOTP
	result := config.DB.Where("user_id = ? AND otp = ?", user.ID, code).
		Order("created_at DESC").First(&otp)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		authLog.Debug("OTP không khớp: userID=%d", user.ID)
		return errors.NewAppError(errors.ErrCodeInvalidOTP, "Mã OTP không đúng", nil)
	}

	if result.Error != nil {
		return result.Error
	}

	if otp.IsExpired() {
		authLog.Debug("OTP đã hết hạn: userID=%d", user.ID)
		return errors.NewAppError(errors.ErrCodeExpiredOTP, "Mã OTP đã hết hạn", nil)
	}

	otp.IsVerified = true
	if err := config.DB.Save(&otp).Error; err != nil {
		return fmt.Errorf("không thể cập nhật trạng thái OTP: %v", err)
	}

	authLog.Info("OTP đã được xác thực: userID=%d", user.ID)
	return nil
}

// ResetPasswordWithOTP đổi mật khẩu sau khi OTP đã được xác thực,
// sau đó xóa toàn bộ OTP của user để mã không dùng lại được
func ResetPasswordWithOTP(email, newPassword string) error {
	user, err := GetUserByEmail(email)
	if err != nil {
		return errors.ErrUserNotFound
	}

	var otp models.PasswordResetOTP
	result := config.DB.Where("user_id = ? AND is_verified = ?", user.ID, true).
		Order("created_at DESC").First(&otp)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return errors.NewAppError(errors.ErrCodeOTPNotVerified, "Chưa xác thực mã OTP", nil)
	}

	if result.Error != nil {
		return result.Error
	}

	if otp.IsExpired() {
		return errors.NewAppError(errors.ErrCodeExpiredOTP, "Mã OTP đã hết hạn", nil)
	}

	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("không thể băm mật khẩu: %v", err)
	}

	user.Password = hashedPassword
	user.UpdatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("không thể cập nhật mật khẩu mới: %v", err)
	}

	if err := config.DB.Where("user_id = ?", user.ID).
		Delete(&models.PasswordResetOTP{}).Error; err != nil {
		return fmt.Errorf("không thể xóa mã OTP: %v", err)
	}

	if err := SendPasswordChangedEmail(user.Email); err != nil {
		return fmt.Errorf("không thể gửi email xác nhận: %v", err)
	}

	authLog.Info("đặt lại mật khẩu thành công: userID=%d", user.ID)
	return nil
}
