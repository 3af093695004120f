package models

import (
	"fmt"
	"time"

	"bookezy/constants"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"default:New User" json:"name"`
	Email       string    `gorm:"unique" json:"email"`
	Password    string    `json:"password"`
	PhoneNumber string    `gorm:"type:varchar(15)" json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `gorm:"default:0" json:"role"` // 0: khách, 1: chủ khách sạn, 2: chủ nhà hàng, 3: admin
	IsVerified  bool      `gorm:"default:false" json:"is_verified"`
	Hotels      []Hotel   `json:"hotels,omitempty" gorm:"foreignKey:OwnerID"`
}

// IsAdmin kiểm tra user có phải admin không
func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

// ValidateRole kiểm tra role hợp lệ
func (u *User) ValidateRole() error {
	if u.Role < constants.RoleUser || u.Role > constants.RoleAdmin {
		return fmt.Errorf("invalid role: %d, must be between %d and %d", u.Role, constants.RoleUser, constants.RoleAdmin)
	}
	return nil
}
