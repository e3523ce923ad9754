package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"field-ministry/campo/internal/errs"
	models "field-ministry/campo/internal/models/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListVisible returns the notifications callerID may see at now, newest first:
// unexpired ones that are global or linked to the caller. An empty callerID
// sees only global notifications.
func (r *NotificationRepository) ListVisible(ctx context.Context, callerID string, now time.Time) ([]models.Notification, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("(notifications.expires_at IS NULL OR notifications.expires_at > ?)", now.UTC())

	if callerID == "" {
		q = q.Where("notifications.is_global = ?", true)
	} else {
		q = q.Select("notifications.*").
			Joins("LEFT JOIN user_notifications un ON un.notification_id = notifications.id AND un.user_id = ?", callerID).
			Where("(notifications.is_global = ? OR un.user_id IS NOT NULL)", true)
	}

	var notifications []models.Notification
	if err := q.Order("notifications.created_at DESC").Find(&notifications).Error; err != nil {
		return nil, translateError(err)
	}
	return notifications, nil
}

func (r *NotificationRepository) Get(ctx context.Context, id string) (*models.Notification, error) {
	return getByID[models.Notification](ctx, r.db, id)
}

func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return translateError(r.db.WithContext(ctx).Create(notification).Error)
}

// CreateWithRecipients inserts the notification and links it to every user in
// userIDs in one transaction.
func (r *NotificationRepository) CreateWithRecipients(ctx context.Context, notification *models.Notification, userIDs []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}
		links := make([]models.UserNotification, 0, len(userIDs))
		for _, uid := range userIDs {
			links = append(links, models.UserNotification{UserID: uid, NotificationID: notification.ID})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
	return translateError(err)
}

func (r *NotificationRepository) LinkUser(ctx context.Context, link *models.UserNotification) error {
	return translateError(r.db.WithContext(ctx).Create(link).Error)
}

// ListUserNotifications returns a user's notification links, newest first.
func (r *NotificationRepository) ListUserNotifications(ctx context.Context, userID string) ([]models.UserNotification, error) {
	var links []models.UserNotification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, translateError(err)
	}
	return links, nil
}

// MarkRead stamps read_at for userID on notificationID. Global notifications
// get a link created on first read; a non-global notification must already be
// linked to the user, otherwise errs.ErrNotFound.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID string, now time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var notification models.Notification
		if err := tx.Where("id = ?", notificationID).First(&notification).Error; err != nil {
			return err
		}

		readAt := now.UTC()
		if notification.IsGlobal {
			link := models.UserNotification{UserID: userID, NotificationID: notificationID, ReadAt: &readAt}
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "notification_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"read_at": readAt}),
			}).Create(&link).Error
		}

		res := tx.Model(&models.UserNotification{}).
			Where("user_id = ? AND notification_id = ?", userID, notificationID).
			Update("read_at", readAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}
