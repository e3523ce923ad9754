package services

import (
	"context"

	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
	"field-ministry/campo/internal/models/dtos/requests"
	models "field-ministry/campo/internal/models/gorm"
)

type NotificationService struct {
	repo      *repositories.NotificationRepository
	publisher NotificationPublisher
	now       Clock
	metrics   *metrics.MetricsRegistry
}

// NewNotificationService wires the notification store to a publisher. A nil
// publisher disables push delivery.
func NewNotificationService(
	repo *repositories.NotificationRepository,
	publisher NotificationPublisher,
	now Clock,
	metricsReg *metrics.MetricsRegistry,
) *NotificationService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if now == nil {
		now = SystemClock
	}
	return &NotificationService{repo: repo, publisher: publisher, now: now, metrics: metricsReg}
}

// ListVisible returns what callerID may see right now.
func (s *NotificationService) ListVisible(ctx context.Context, callerID string) ([]models.Notification, error) {
	return s.repo.ListVisible(ctx, callerID, s.now())
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.UserNotification, error) {
	return s.repo.ListUserNotifications(ctx, userID)
}

func (s *NotificationService) Create(ctx context.Context, req *requests.CreateNotificationReq) (*models.Notification, error) {
	notification := req.ToModel()
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}
	s.metrics.Created("notification")
	logging.Info("Notification created", "notification_id", notification.ID, "type", notification.Type, "global", notification.IsGlobal)

	if notification.IsGlobal {
		s.publisher.PublishGlobal(notification)
	}
	return notification, nil
}

// Send creates a notification addressed to userIDs and pushes it to the ones
// connected.
func (s *NotificationService) Send(ctx context.Context, notification *models.Notification, userIDs []string) error {
	if err := s.repo.CreateWithRecipients(ctx, notification, userIDs); err != nil {
		return err
	}
	s.metrics.Created("notification")
	if notification.IsGlobal {
		s.publisher.PublishGlobal(notification)
	} else {
		s.publisher.PublishToUsers(userIDs, notification)
	}
	return nil
}

func (s *NotificationService) LinkUser(ctx context.Context, req *requests.CreateUserNotificationReq) (*models.UserNotification, error) {
	link := req.ToModel()
	if err := s.repo.LinkUser(ctx, link); err != nil {
		return nil, err
	}
	s.metrics.Created("user_notification")

	if notification, err := s.repo.Get(ctx, link.NotificationID); err == nil {
		s.publisher.PublishToUsers([]string{link.UserID}, notification)
	} else {
		logging.Warn("Linked notification not reloaded for push", "notification_id", link.NotificationID, "error", err)
	}
	return link, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.repo.MarkRead(ctx, userID, notificationID, s.now())
}
