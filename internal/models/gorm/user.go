package gorm

import (
	"field-ministry/campo/internal/constants"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              string             `gorm:"column:id;primaryKey" json:"id"`
	Email           *string            `gorm:"column:email;uniqueIndex" json:"email"`
	FirstName       *string            `gorm:"column:first_name" json:"firstName"`
	LastName        *string            `gorm:"column:last_name" json:"lastName"`
	ProfileImageURL *string            `gorm:"column:profile_image_url" json:"profileImageUrl"`
	Name            string             `gorm:"column:name;not null" json:"name"`
	Phone           *string            `gorm:"column:phone" json:"phone"`
	Avatar          *string            `gorm:"column:avatar" json:"avatar"`
	Role            constants.UserRole `gorm:"column:role;not null;default:MEMBER" json:"role"`
	IsActive        bool               `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
