package requests

import (
	"time"

	"field-ministry/campo/internal/constants"
	models "field-ministry/campo/internal/models/gorm"
)

type CreateNotificationReq struct {
	Title     string                     `json:"title" validate:"required,max=200"`
	Message   string                     `json:"message" validate:"required"`
	Type      constants.NotificationType `json:"type" validate:"omitempty,oneof=INFO WARNING SUCCESS ERROR REMINDER"`
	IsGlobal  *bool                      `json:"isGlobal"`
	ExpiresAt *time.Time                 `json:"expiresAt"`
}

func (r *CreateNotificationReq) ToModel() *models.Notification {
	typ := r.Type
	if typ == "" {
		typ = constants.NotificationInfo
	}
	n := &models.Notification{
		Title:     r.Title,
		Message:   r.Message,
		Type:      typ,
		ExpiresAt: utcPtr(r.ExpiresAt),
	}
	if r.IsGlobal != nil {
		n.IsGlobal = *r.IsGlobal
	}
	return n
}

type CreateUserNotificationReq struct {
	UserID         string     `json:"userId" validate:"required"`
	NotificationID string     `json:"notificationId" validate:"required"`
	ReadAt         *time.Time `json:"readAt"`
}

func (r *CreateUserNotificationReq) ToModel() *models.UserNotification {
	return &models.UserNotification{
		UserID:         r.UserID,
		NotificationID: r.NotificationID,
		ReadAt:         utcPtr(r.ReadAt),
	}
}
