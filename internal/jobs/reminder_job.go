package jobs

import (
	"context"
	"fmt"
	"time"

	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
	models "field-ministry/campo/internal/models/gorm"
	"field-ministry/campo/internal/services"
)

const reminderMarkerTTL = 48 * time.Hour

// ReminderJob notifies participants and the leader the day before a preaching day.
type ReminderJob struct {
	days          *services.PreachingDayService
	users         *repositories.UserRepository
	notifications *services.NotificationService
	cache         common.CacheInterface
	now           services.Clock
	metrics       *metrics.MetricsRegistry
}

func NewReminderJob(
	days *services.PreachingDayService,
	users *repositories.UserRepository,
	notifications *services.NotificationService,
	cache common.CacheInterface,
	now services.Clock,
	metricsReg *metrics.MetricsRegistry,
) *ReminderJob {
	if now == nil {
		now = services.SystemClock
	}
	return &ReminderJob{
		days:          days,
		users:         users,
		notifications: notifications,
		cache:         cache,
		now:           now,
		metrics:       metricsReg,
	}
}

// Run sends tomorrow's reminder unless it already went out. It reports
// whether a notification was created.
func (j *ReminderJob) Run(ctx context.Context) (bool, error) {
	start := time.Now()
	if j.metrics != nil {
		defer func() {
			j.metrics.JobDuration.WithLabelValues("reminder").Observe(time.Since(start).Seconds())
		}()
	}

	loc := j.days.Location()
	tomorrow := j.now().In(loc).AddDate(0, 0, 1)

	day, err := j.days.OnDate(ctx, tomorrow)
	if err != nil {
		return false, fmt.Errorf("failed to load tomorrow's preaching day: %w", err)
	}
	if day == nil || (day.Status != constants.DayScheduled && day.Status != constants.DayConfirmed) {
		return false, nil
	}

	marker := string(constants.CachePrefixReminderSent) + tomorrow.Format("2006-01-02")
	claimed, err := j.cache.SetIfAbsent(ctx, marker, day.ID, reminderMarkerTTL)
	if err != nil {
		return false, fmt.Errorf("failed to claim reminder marker: %w", err)
	}
	if !claimed {
		return false, nil
	}

	recipients, err := j.users.ListParticipantIDs(ctx, day.ID)
	if err != nil {
		j.release(marker)
		return false, fmt.Errorf("failed to list participants: %w", err)
	}
	recipients = appendUnique(recipients, day.LeaderID)

	_, endOfDay := repositories.DayBounds(tomorrow, loc)
	notification := &models.Notification{
		Title:     "Lembrete: pregação amanhã",
		Message:   fmt.Sprintf("Saída às %s em %s.", day.DepartureTime, day.MeetingPlace),
		Type:      constants.NotificationReminder,
		ExpiresAt: &endOfDay,
	}
	if err := j.notifications.Send(ctx, notification, recipients); err != nil {
		j.release(marker)
		return false, fmt.Errorf("failed to send reminder: %w", err)
	}

	if j.metrics != nil {
		j.metrics.RemindersSentTotal.Inc()
	}
	logging.Info("Reminder sent", "preaching_day_id", day.ID, "recipients", len(recipients))
	return true, nil
}

// release drops the marker so the next tick retries. The run's context may
// already be done, so it gets its own.
func (j *ReminderJob) release(marker string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := j.cache.Delete(ctx, marker); err != nil {
		logging.Warn("Failed to release reminder marker", "key", marker, "error", err)
	}
}

// RunScheduled runs the job immediately and then on every tick until ctx ends.
func (j *ReminderJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := j.Run(ctx); err != nil {
		logging.Error("Reminder job failed", "error", err)
	}

	for {
		select {
		case <-ticker.C:
			if _, err := j.Run(ctx); err != nil {
				logging.Error("Reminder job failed", "error", err)
			}
		case <-ctx.Done():
			logging.Info("Reminder job stopped")
			return
		}
	}
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
