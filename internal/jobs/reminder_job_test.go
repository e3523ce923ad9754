package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/dbtest"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/metrics"
	models "field-ministry/campo/internal/models/gorm"
	"field-ministry/campo/internal/services"
)

type fixture struct {
	gdb     *gorm.DB
	job     *ReminderJob
	notifs  *services.NotificationService
	metrics *metrics.MetricsRegistry
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	gdb, _ := dbtest.Open(t)

	for _, id := range []string{"leader", "m1", "m2", "outsider"} {
		require.NoError(t, gdb.Create(&models.User{ID: id, Name: id, Role: constants.RoleMember, IsActive: true}).Error)
	}

	clock := func() time.Time { return now }
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	days := services.NewPreachingDayService(
		repositories.NewPreachingDayRepository(gdb),
		repositories.NewParticipationRepository(gdb),
		repositories.NewWorkSessionRepository(gdb),
		time.UTC, clock, m,
	)
	notifs := services.NewNotificationService(repositories.NewNotificationRepository(gdb), nil, clock, m)
	cache := common.NewCacheService(3600, 600)

	return &fixture{
		gdb:     gdb,
		job:     NewReminderJob(days, repositories.NewUserRepository(gdb), notifs, cache, clock, m),
		notifs:  notifs,
		metrics: m,
	}
}

func (f *fixture) seedDay(t *testing.T, date time.Time, status constants.DayStatus, participants ...string) {
	t.Helper()
	day := &models.PreachingDay{Date: date, DepartureTime: "08:00", MeetingPlace: "Praça", LeaderID: "leader", Status: status}
	require.NoError(t, f.gdb.Create(day).Error)
	for _, uid := range participants {
		require.NoError(t, f.gdb.Create(&models.Participation{UserID: uid, PreachingDayID: day.ID}).Error)
	}
}

func TestReminderJob_SendsOnce(t *testing.T) {
	now := time.Date(2024, 7, 9, 18, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	f.seedDay(t, time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC), constants.DayScheduled, "m1", "m2")
	ctx := context.Background()

	sent, err := f.job.Run(ctx)
	require.NoError(t, err)
	require.True(t, sent)

	sent, err = f.job.Run(ctx)
	require.NoError(t, err)
	require.False(t, sent)

	var count int64
	require.NoError(t, f.gdb.Model(&models.Notification{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
	require.Equal(t, 1.0, testutil.ToFloat64(f.metrics.RemindersSentTotal))

	for _, uid := range []string{"leader", "m1", "m2"} {
		visible, err := f.notifs.ListVisible(ctx, uid)
		require.NoError(t, err)
		require.Len(t, visible, 1, uid)
		require.Equal(t, constants.NotificationReminder, visible[0].Type)
		require.WithinDuration(t, time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC), *visible[0].ExpiresAt, time.Millisecond)
	}

	visible, err := f.notifs.ListVisible(ctx, "outsider")
	require.NoError(t, err)
	require.Empty(t, visible)
}

func TestReminderJob_SkipsCancelledAndMissing(t *testing.T) {
	now := time.Date(2024, 7, 9, 18, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	sent, err := f.job.Run(ctx)
	require.NoError(t, err)
	require.False(t, sent)

	f.seedDay(t, time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC), constants.DayCancelled, "m1")
	sent, err = f.job.Run(ctx)
	require.NoError(t, err)
	require.False(t, sent)
}
