package validator

import (
	"regexp"

	"bookezy/constants"
	"bookezy/errors"
	"bookezy/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	// Role admin không thể tự gán khi đăng ký
	if user.Role < constants.RoleUser || user.Role >= constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateHotel validate thông tin khách sạn
func ValidateHotel(hotel *models.Hotel) error {
	if hotel.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách sạn không được để trống", nil)
	}

	if hotel.City == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thành phố không được để trống", nil)
	}

	if err := hotel.ValidateBadge(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if err := hotel.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if hotel.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá không được âm", nil)
	}

	return nil
}

// ValidateRestaurant validate thông tin nhà hàng
func ValidateRestaurant(restaurant *models.Restaurant) error {
	if restaurant.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên nhà hàng không được để trống", nil)
	}

	if restaurant.City == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thành phố không được để trống", nil)
	}

	if err := restaurant.ValidateBadge(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if err := restaurant.ValidatePriceRange(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if err := restaurant.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if restaurant.AverageCostForTwo < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Chi phí trung bình không được âm", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
