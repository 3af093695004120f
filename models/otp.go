package models

import "time"

// OTPExpiry thời gian hiệu lực của mã OTP đặt lại mật khẩu
const OTPExpiry = 10 * time.Minute

// PasswordResetOTP mã dùng một lần cho luồng quên mật khẩu
type PasswordResetOTP struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"userId"`
	User       User      `json:"-" gorm:"foreignKey:UserID"`
	OTP        string    `gorm:"type:varchar(6)" json:"-"`
	IsVerified bool      `gorm:"default:false" json:"isVerified"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// IsExpired kiểm tra mã đã hết hạn chưa
func (o *PasswordResetOTP) IsExpired() bool {
	return time.Since(o.CreatedAt) > OTPExpiry
}
