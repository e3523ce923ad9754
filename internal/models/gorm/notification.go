package gorm

import (
	"field-ministry/campo/internal/constants"
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID        string                     `gorm:"column:id;primaryKey" json:"id"`
	Title     string                     `gorm:"column:title;not null" json:"title"`
	Message   string                     `gorm:"column:message;not null" json:"message"`
	Type      constants.NotificationType `gorm:"column:type;not null;default:INFO" json:"type"`
	IsGlobal  bool                       `gorm:"column:is_global;not null;default:false" json:"isGlobal"`
	ExpiresAt *time.Time                 `gorm:"column:expires_at" json:"expiresAt"`
	CreatedAt time.Time                  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time                  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	ensureID(&n.ID)
	return nil
}

// UserNotification links a notification to a user and tracks read state.
type UserNotification struct {
	ID             string     `gorm:"column:id;primaryKey" json:"id"`
	UserID         string     `gorm:"column:user_id;not null;uniqueIndex:idx_user_notifications_user_notification" json:"userId"`
	NotificationID string     `gorm:"column:notification_id;not null;uniqueIndex:idx_user_notifications_user_notification" json:"notificationId"`
	ReadAt         *time.Time `gorm:"column:read_at" json:"readAt"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Notification *Notification `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (UserNotification) TableName() string {
	return "user_notifications"
}

func (un *UserNotification) BeforeCreate(tx *gorm.DB) error {
	ensureID(&un.ID)
	return nil
}
