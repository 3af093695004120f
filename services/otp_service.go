package services

import (
	"time"

	"bookezy/models"
	"bookezy/services/logger"

	"gorm.io/gorm"
)

type OTPService struct {
	db     *gorm.DB
	logger logger.Logger
}

type OTPServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewOTPService(opts OTPServiceOptions) *OTPService {
	l := opts.Logger
	if l == nil {
		l = logger.NewFromEnv()
	}
	return &OTPService{
		db:     opts.DB,
		logger: l,
	}
}

// PurgeExpiredOTPs xóa các mã OTP đã quá hạn, trả về số dòng bị xóa
func (s *OTPService) PurgeExpiredOTPs() (int64, error) {
	cutoff := time.Now().Add(-models.OTPExpiry)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.PasswordResetOTP{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.logger.Debug("đã dọn %d mã OTP hết hạn", result.RowsAffected)
	}
	return result.RowsAffected, result.Error
}
