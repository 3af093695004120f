package services

import (
	"testing"
	"time"

	"bookezy/config"
	"bookezy/constants"
	"bookezy/errors"
	"bookezy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9')
		}
		seen[code] = true
	}
	// 20 mã liên tiếp không thể trùng nhau hết
	assert.Greater(t, len(seen), 1)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 42, Role: constants.RoleHotelOwner}, 15, true)
	require.NoError(t, err)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, constants.RoleHotelOwner, role)
}

func TestGetUserIDFromToken_Malformed(t *testing.T) {
	_, _, err := GetUserIDFromToken("not-a-token")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidToken, appErr.Code)
}

func TestVerifyResetOTP(t *testing.T) {
	config.DB = setupTestDB(t)
	user := createTestUser(t, config.DB, "reset@example.com", constants.RoleUser)

	require.NoError(t, config.DB.Create(&models.PasswordResetOTP{
		UserID:    user.ID,
		OTP:       "123456",
		CreatedAt: time.Now(),
	}).Error)

	// Sai mã
	err := VerifyResetOTP(user.Email, "654321")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidOTP, appErr.Code)

	// Email không tồn tại
	err = VerifyResetOTP("khong-ton-tai@example.com", "123456")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	// Đúng mã
	require.NoError(t, VerifyResetOTP(user.Email, "123456"))

	var otp models.PasswordResetOTP
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).First(&otp).Error)
	assert.True(t, otp.IsVerified)
}

func TestVerifyResetOTP_Expired(t *testing.T) {
	config.DB = setupTestDB(t)
	user := createTestUser(t, config.DB, "reset@example.com", constants.RoleUser)

	otp := models.PasswordResetOTP{
		UserID: user.ID,
		OTP:    "123456",
	}
	require.NoError(t, config.DB.Create(&otp).Error)
	// Đẩy thời điểm tạo lùi quá hạn
	require.NoError(t, config.DB.Model(&otp).
		Update("created_at", time.Now().Add(-models.OTPExpiry-time.Minute)).Error)

	err := VerifyResetOTP(user.Email, "123456")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeExpiredOTP, appErr.Code)
}

func TestResetPasswordWithOTP_RequiresVerifiedOTP(t *testing.T) {
	config.DB = setupTestDB(t)
	user := createTestUser(t, config.DB, "reset@example.com", constants.RoleUser)

	// Có mã nhưng chưa xác thực
	require.NoError(t, config.DB.Create(&models.PasswordResetOTP{
		UserID: user.ID,
		OTP:    "123456",
	}).Error)

	err := ResetPasswordWithOTP(user.Email, "matkhaumoi")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeOTPNotVerified, appErr.Code)
}

func TestPurgeExpiredOTPs(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "purge@example.com", constants.RoleUser)
	svc := NewOTPService(OTPServiceOptions{DB: db})

	fresh := models.PasswordResetOTP{UserID: user.ID, OTP: "111111"}
	stale := models.PasswordResetOTP{UserID: user.ID, OTP: "222222"}
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&stale).
		Update("created_at", time.Now().Add(-models.OTPExpiry-time.Hour)).Error)

	deleted, err := svc.PurgeExpiredOTPs()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.PasswordResetOTP
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)
	require.NoError(t, CheckPassword(hashed, "secret123"))
	require.Error(t, CheckPassword(hashed, "sai-mat-khau"))
}
