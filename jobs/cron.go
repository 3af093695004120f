package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// OTPPurger định nghĩa interface cho việc dọn các mã OTP hết hạn
type OTPPurger interface {
	PurgeExpiredOTPs() (int64, error)
}

var otpPurger OTPPurger

// SetOTPPurger thiết lập implementation cho OTPPurger
func SetOTPPurger(purger OTPPurger) {
	otpPurger = purger
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang dọn mã OTP hết hạn lúc: %v", now)
		if otpPurger == nil {
			log.Printf("Lỗi: OTPPurger chưa được thiết lập")
			return
		}
		deleted, err := otpPurger.PurgeExpiredOTPs()
		if err != nil {
			log.Printf("Lỗi khi dọn mã OTP hết hạn: %v", err)
			return
		}
		log.Printf("Đã xóa %d mã OTP hết hạn", deleted)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
