package services

import (
	"fmt"
	"net/smtp"
	"os"
)

func smtpConfig() (from string, auth smtp.Auth, addr string) {
	from = os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	auth = smtp.PlainAuth("", from, password, host)
	addr = host + ":" + port
	return from, auth, addr
}

func sendHTMLEmail(to, subject, body string) error {
	from, auth, addr := smtpConfig()
	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body)
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}

// SendOTPEmail gửi mã dùng một lần cho luồng quên mật khẩu
func SendOTPEmail(email, otp string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Mã xác thực</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu đặt lại mật khẩu cho tài khoản của bạn.</p>
			<p>Mã dùng một lần của bạn là: <strong>%s</strong></p>
			<p>Mã có hiệu lực trong 10 phút.</p>
			<p>Nếu không yêu cầu mã này thì bạn có thể bỏ qua email này một cách an toàn. Có thể ai đó khác đã nhập địa chỉ email của bạn do nhầm lẫn.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email, otp)

	return sendHTMLEmail(email, "Mã đặt lại mật khẩu", body)
}

// SendPasswordChangedEmail thông báo mật khẩu đã được cập nhật
func SendPasswordChangedEmail(email string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Đổi mật khẩu</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Mật khẩu của bạn đã được cập nhật thành công.</p>
			<p>Xin cám ơn,<br>Nhóm tài khoản</p>
		</body>
		</html>
	`, email)

	return sendHTMLEmail(email, "Đổi mật khẩu", body)
}

