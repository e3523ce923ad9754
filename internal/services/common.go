package services

import (
	"time"

	models "field-ministry/campo/internal/models/gorm"
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now().UTC() }

// NotificationPublisher pushes new notifications to connected clients.
type NotificationPublisher interface {
	PublishGlobal(n *models.Notification)
	PublishToUsers(userIDs []string, n *models.Notification)
}

type noopPublisher struct{}

func (noopPublisher) PublishGlobal(*models.Notification)            {}
func (noopPublisher) PublishToUsers([]string, *models.Notification) {}
